package assets

import "github.com/go-gl/mathgl/mgl32"

// Names of the meshes every Pool starts with.
const (
	MeshCube   = "cube"
	MeshGround = "ground"
	MeshSkybox = "skybox"
)

// Cube returns a unit cube centred on the origin with per-face normals, 24
// vertices and 36 indices.
func Cube() *Mesh {
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-.5, -.5, -.5}, {.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}}},
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-.5, -.5, .5}, {.5, -.5, .5}, {-.5, .5, .5}, {.5, .5, .5}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-.5, .5, .5}, {.5, .5, .5}, {-.5, .5, -.5}, {.5, .5, -.5}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-.5, -.5, .5}, {.5, -.5, .5}, {-.5, -.5, -.5}, {.5, -.5, -.5}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{.5, .5, .5}, {.5, -.5, .5}, {.5, .5, -.5}, {.5, -.5, -.5}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-.5, .5, .5}, {-.5, -.5, .5}, {-.5, .5, -.5}, {-.5, -.5, -.5}}},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, Vertex{Position: c, Normal: f.normal, UV: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base+1, base+2, base+3)
	}
	return NewMesh(MeshCube, vertices, indices)
}

// Ground returns a 2x2 quad on the XZ plane facing +Y. The uv coordinates
// repeat tiling times across the quad.
func Ground(tiling float32) *Mesh {
	up := mgl32.Vec3{0, 1, 0}
	vertices := []Vertex{
		{Position: mgl32.Vec3{-1, 0, -1}, Normal: up, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 0, -1}, Normal: up, UV: mgl32.Vec2{tiling, 0}},
		{Position: mgl32.Vec3{-1, 0, 1}, Normal: up, UV: mgl32.Vec2{0, tiling}},
		{Position: mgl32.Vec3{1, 0, 1}, Normal: up, UV: mgl32.Vec2{tiling, tiling}},
	}
	return NewMesh(MeshGround, vertices, []uint32{0, 1, 2, 1, 2, 3})
}

// Skybox returns the inward-facing cube sampled with a cubemap. Only the
// position attribute is meaningful.
func Skybox() *Mesh {
	corners := [8]mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	vertices := make([]Vertex, len(corners))
	for i, c := range corners {
		vertices[i] = Vertex{Position: c}
	}
	indices := []uint32{
		0, 1, 2, 2, 3, 0, // back
		4, 0, 3, 3, 7, 4, // left
		1, 5, 6, 6, 2, 1, // right
		4, 7, 6, 6, 5, 4, // front
		3, 2, 6, 6, 7, 3, // top
		0, 4, 1, 1, 4, 5, // bottom
	}
	return NewMesh(MeshSkybox, vertices, indices)
}
