package renderer

import (
	"log/slog"
	"slices"

	"playgroundgl/internal/app"
	"playgroundgl/internal/graphics"
	"playgroundgl/internal/graphics/layer"
	"playgroundgl/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates the main pass via renderable features, drawn layer by
// layer and in the order given within a layer.
type Renderer struct {
	renderables []Renderable
	clearColor  mgl32.Vec3
	width       int
	height      int
}

// NewRenderer configures global GL state and initializes every renderable.
func NewRenderer(clearColor mgl32.Vec3, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rs = slices.Clone(rs)
	layer.Sort(rs, LayerOf)
	r := &Renderer{renderables: rs, clearColor: clearColor}
	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// Dispose what was already initialized.
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}
	return r, nil
}

// PolygonMode maps a render mode onto glPolygonMode.
func PolygonMode(m app.RenderMode) uint32 {
	switch m {
	case app.Wireframe:
		return gl.LINE
	case app.Points:
		return gl.POINT
	}
	return gl.FILL
}

// Render clears the default framebuffer and draws every renderable.
func (r *Renderer) Render(ctx RenderContext) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], 1)
	gl.StencilMask(0xFF)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	gl.PolygonMode(gl.FRONT_AND_BACK, PolygonMode(ctx.State.RenderMode))

	for _, rr := range r.renderables {
		rr.Render(ctx)
	}
}

// Shaders lists the programs of every renderable that owns any.
func (r *Renderer) Shaders() []*graphics.Shader {
	var out []*graphics.Shader
	for _, rr := range r.renderables {
		if so, ok := rr.(ShaderOwner); ok {
			out = append(out, so.Shaders()...)
		}
	}
	return out
}

// ReloadShaders rebuilds every program that uses file. Programs that fail
// to compile keep their previous version.
func (r *Renderer) ReloadShaders(file string, extra ...*graphics.Shader) {
	for _, sh := range append(r.Shaders(), extra...) {
		if !sh.Uses(file) {
			continue
		}
		if err := sh.Reload(); err != nil {
			slog.Error("shader reload failed, keeping previous program", "file", file, "err", err)
		}
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport forwards a framebuffer resize to every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}

// Aspect returns width/height of the last viewport, or 1 before the first.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}
