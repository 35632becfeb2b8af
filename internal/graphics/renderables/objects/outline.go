package objects

import (
	"path/filepath"

	"playgroundgl/internal/graphics"
	"playgroundgl/internal/graphics/layer"
	renderer "playgroundgl/internal/graphics/renderer"
	"playgroundgl/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Outline redraws selected objects slightly enlarged in a flat color wherever
// Objects left the stencil at 0, which leaves a rim around each of them.
type Outline struct {
	shaderDir string
	color     mgl32.Vec3
	scale     float32
	flat      *graphics.Shader
}

func NewOutline(shaderDir string, color mgl32.Vec3, scale float32) *Outline {
	return &Outline{shaderDir: shaderDir, color: color, scale: scale}
}

func (o *Outline) Init() error {
	var err error
	o.flat, err = graphics.NewShader(
		filepath.Join(o.shaderDir, "flat.vert"),
		filepath.Join(o.shaderDir, "flat.frag"))
	return err
}

// Layer makes the outline draw after ground and sky. It writes no depth, so
// any later depth-tested pass would cover it.
func (o *Outline) Layer() layer.Layer { return layer.Overlay }

func (o *Outline) Shaders() []*graphics.Shader {
	return []*graphics.Shader{o.flat}
}

func (o *Outline) Render(ctx renderer.RenderContext) {
	sel := ctx.State.Controller.Selection()
	if sel.Len() == 0 {
		return
	}
	defer profiling.Track("objects.Outline")()

	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilMask(0x00)
	gl.Disable(gl.DEPTH_TEST)

	s := o.scale
	vp := ctx.Proj.Mul4(ctx.View)
	o.flat.Use()
	o.flat.SetVector3("color", o.color.X(), o.color.Y(), o.color.Z())
	for _, i := range sel.Indices() {
		obj := ctx.Registry.At(i)
		if obj == nil {
			continue
		}
		o.flat.SetMatrix4("mvp", vp.Mul4(obj.Model).Mul4(mgl32.Scale3D(s, s, s)))
		graphics.Upload(obj.Mesh).Draw()
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
}

func (o *Outline) Dispose() {
	o.flat.Delete()
}

func (o *Outline) SetViewport(width, height int) {}
