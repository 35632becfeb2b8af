package ground

import (
	"path/filepath"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/graphics"
	renderer "playgroundgl/internal/graphics/renderer"
	"playgroundgl/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Level is the height of the ground plane, just under the camera floor.
const Level = -1.0

// Ground draws a large textured plane under the scene.
type Ground struct {
	shaderDir string
	texture   string
	size      float32
	mesh      *assets.Mesh
	shader    *graphics.Shader
	tex       *graphics.Texture
}

// NewGround returns a size x size plane. mesh is the pool's ground quad.
func NewGround(shaderDir, texture string, size float32, mesh *assets.Mesh) *Ground {
	return &Ground{shaderDir: shaderDir, texture: texture, size: size, mesh: mesh}
}

func (g *Ground) Init() error {
	var err error
	g.shader, err = graphics.NewShader(
		filepath.Join(g.shaderDir, "ground.vert"),
		filepath.Join(g.shaderDir, "ground.frag"))
	if err != nil {
		return err
	}
	img := assets.Solid(90, 110, 80, 255)
	if g.texture != "" {
		if loaded, err := assets.LoadRGBA(g.texture, true); err == nil {
			img = loaded
		}
	}
	g.tex = graphics.NewTexture2D(img)
	return nil
}

func (g *Ground) Shaders() []*graphics.Shader {
	return []*graphics.Shader{g.shader}
}

func (g *Ground) Render(ctx renderer.RenderContext) {
	defer profiling.Track("ground.Render")()

	half := g.size / 2
	model := mgl32.Translate3D(0, Level, 0).Mul4(mgl32.Scale3D(half, 1, half))

	gl.StencilMask(0x00)
	g.shader.Use()
	g.shader.SetMatrix4("mvp", ctx.Proj.Mul4(ctx.View).Mul4(model))
	g.shader.SetInt("diffuse_map", 0)
	g.tex.Bind(0)
	graphics.Upload(g.mesh).Draw()
}

func (g *Ground) Dispose() {
	g.tex.Delete()
	g.shader.Delete()
}

func (g *Ground) SetViewport(width, height int) {}
