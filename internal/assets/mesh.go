package assets

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the interleaved layout shared by every mesh: position, normal, uv.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// VertexStride is the size of one Vertex in bytes when uploaded.
const VertexStride = 8 * 4

// Mesh holds CPU-side geometry. Meshes are owned by a Pool and shared by
// every scene object that references them.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32

	// GPUData is set by the graphics backend that uploaded the mesh.
	GPUData any
}

// NewMesh builds an indexed triangle mesh.
func NewMesh(name string, vertices []Vertex, indices []uint32) *Mesh {
	return &Mesh{Name: name, Vertices: vertices, Indices: indices}
}

// Interleaved flattens the vertices into the float layout expected by the
// vertex shaders (3 position, 3 normal, 2 uv).
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*8)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}

// Bounds returns the local-space axis-aligned bounding box.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		for a := 0; a < 3; a++ {
			if v.Position[a] < min[a] {
				min[a] = v.Position[a]
			}
			if v.Position[a] > max[a] {
				max[a] = v.Position[a]
			}
		}
	}
	return min, max
}
