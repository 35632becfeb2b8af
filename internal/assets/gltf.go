package assets

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF reads a .gltf or .glb file and merges every triangle primitive of
// every mesh into one Mesh named after the path. Node transforms are not
// applied; models are expected to be authored in a single local space.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	out := NewMesh(path, nil, nil)
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if err := appendPrimitive(doc, prim, out); err != nil {
				return nil, fmt.Errorf("gltf %q mesh %d primitive %d: %w", path, mi, pi, err)
			}
		}
	}
	if len(out.Indices) == 0 {
		return nil, fmt.Errorf("gltf %q: no triangle geometry", path)
	}
	return out, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, out *Mesh) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("uvs: %w", err)
		}
	}

	base := uint32(len(out.Vertices))
	for i, p := range positions {
		v := Vertex{Position: mgl32.Vec3(p), Normal: mgl32.Vec3{0, 1, 0}}
		if i < len(normals) {
			v.Normal = mgl32.Vec3(normals[i])
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2(uvs[i])
		}
		out.Vertices = append(out.Vertices, v)
	}

	if prim.Indices == nil {
		for i := range positions {
			out.Indices = append(out.Indices, base+uint32(i))
		}
		return nil
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("indices: %w", err)
	}
	for i, idx := range indices {
		if int(idx) >= len(positions) {
			return fmt.Errorf("index %d at %d out of range for %d vertices", idx, i, len(positions))
		}
		out.Indices = append(out.Indices, base+idx)
	}
	return nil
}
