package graphics

import (
	"log/slog"

	"playgroundgl/internal/assets"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GPUMesh is the vertex array built from an assets.Mesh. Attribute
// locations: 0 position, 1 normal, 2 uv.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Upload returns the GPU copy of m, creating it on first call and caching it
// in m.GPUData.
func Upload(m *assets.Mesh) *GPUMesh {
	if g, ok := m.GPUData.(*GPUMesh); ok {
		return g
	}
	g := &GPUMesh{count: int32(len(m.Indices))}
	data := m.Interleaved()

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, assets.VertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, assets.VertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, assets.VertexStride, 6*4)

	gl.BindVertexArray(0)
	m.GPUData = g
	return g
}

// Draw issues one indexed triangle draw.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, nil)
}

// Release deletes the GL objects of m, if it was uploaded.
func Release(m *assets.Mesh) {
	g, ok := m.GPUData.(*GPUMesh)
	if !ok {
		return
	}
	slog.Debug("deleting mesh buffers", "mesh", m.Name, "vao", g.vao)
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
	m.GPUData = nil
}
