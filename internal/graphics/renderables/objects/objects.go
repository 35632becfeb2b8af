package objects

import (
	"log/slog"
	"path/filepath"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/graphics"
	renderer "playgroundgl/internal/graphics/renderer"
	"playgroundgl/internal/lighting"
	"playgroundgl/internal/profiling"
	"playgroundgl/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Options configures the object renderable.
type Options struct {
	ShaderDir  string
	Texture    string
	Sun        lighting.Sun
	Flashlight lighting.Flashlight
}

// Objects draws the scene registry: lit boxes and models and flat-colored
// light markers.
type Objects struct {
	opts     Options
	lit      *graphics.Shader
	flat     *graphics.Shader
	textures *graphics.TextureCache
	diffuse  *graphics.Texture
	plain    *graphics.Texture
}

func NewObjects(opts Options) *Objects {
	return &Objects{opts: opts, textures: graphics.NewTextureCache()}
}

func (o *Objects) Init() error {
	var err error
	o.lit, err = graphics.NewShader(
		filepath.Join(o.opts.ShaderDir, "object.vert"),
		filepath.Join(o.opts.ShaderDir, "object.frag"))
	if err != nil {
		return err
	}
	o.flat, err = graphics.NewShader(
		filepath.Join(o.opts.ShaderDir, "flat.vert"),
		filepath.Join(o.opts.ShaderDir, "flat.frag"))
	if err != nil {
		o.lit.Delete()
		return err
	}
	if o.opts.Texture != "" {
		o.diffuse, err = o.textures.Get(o.opts.Texture)
		if err != nil {
			slog.Warn("object texture unavailable, using plain white", "err", err)
		}
	}
	if o.diffuse == nil {
		o.plain = graphics.NewTexture2D(assets.Solid(255, 255, 255, 255))
		o.diffuse = o.plain
	}
	return nil
}

func (o *Objects) Shaders() []*graphics.Shader {
	return []*graphics.Shader{o.lit, o.flat}
}

// Render draws unselected objects first, then selected ones while writing 1
// to the stencil buffer for Outline.
func (o *Objects) Render(ctx renderer.RenderContext) {
	defer profiling.Track("objects.Render")()

	reg := ctx.Registry
	sel := ctx.State.Controller.Selection()

	o.lit.Use()
	o.lit.SetMatrix4("view", ctx.View)
	o.lit.SetMatrix4("projection", ctx.Proj)
	o.lit.SetInt("material.diffuse_map", 0)
	o.lit.SetFloat("material.shininess", 32)
	sun := o.opts.Sun
	sun.On = ctx.State.SunOn
	sun.Apply(o.lit, ctx.View)
	fl := o.opts.Flashlight
	fl.On = ctx.State.FlashlightOn
	fl.Apply(o.lit, ctx.State.FlashlightPitch, ctx.State.FlashlightYaw)
	lighting.ApplyPointLights(o.lit, ctx.View, reg.Lights())
	o.diffuse.Bind(0)

	gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
	for _, i := range sel.DrawOrder(reg.Len()) {
		obj := reg.At(i)
		if sel.Contains(i) {
			gl.StencilMask(0xFF)
		} else {
			gl.StencilMask(0x00)
		}
		o.draw(obj, ctx)
	}

	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
}

func (o *Objects) draw(obj *scene.Object, ctx renderer.RenderContext) {
	mesh := graphics.Upload(obj.Mesh)
	if obj.Kind == scene.KindLight {
		o.flat.Use()
		o.flat.SetMatrix4("mvp", ctx.Proj.Mul4(ctx.View).Mul4(obj.Model))
		o.flat.SetVector3("color", obj.Color.X(), obj.Color.Y(), obj.Color.Z())
		mesh.Draw()
		o.lit.Use()
		return
	}
	mv := ctx.View.Mul4(obj.Model)
	o.lit.SetMatrix4("model", obj.Model)
	o.lit.SetMatrix3("normal_matrix", mv.Mat3().Inv().Transpose())
	o.lit.SetVector3("tint", obj.Color.X(), obj.Color.Y(), obj.Color.Z())
	mesh.Draw()
}

func (o *Objects) Dispose() {
	o.textures.Delete()
	if o.plain != nil {
		o.plain.Delete()
	}
	o.lit.Delete()
	o.flat.Delete()
}

func (o *Objects) SetViewport(width, height int) {}
