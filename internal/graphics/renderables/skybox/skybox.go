package skybox

import (
	"image"
	"log/slog"
	"path/filepath"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/graphics"
	"playgroundgl/internal/graphics/layer"
	renderer "playgroundgl/internal/graphics/renderer"
	"playgroundgl/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Skybox draws a cubemap behind everything else. It must run after the
// opaque renderables: the vertex shader pins depth to 1 and the pass uses
// LEQUAL so only untouched pixels are filled.
type Skybox struct {
	shaderDir string
	faceDir   string
	mesh      *assets.Mesh
	shader    *graphics.Shader
	cubemap   *graphics.Texture
}

func NewSkybox(shaderDir, faceDir string, mesh *assets.Mesh) *Skybox {
	return &Skybox{shaderDir: shaderDir, faceDir: faceDir, mesh: mesh}
}

func (s *Skybox) Init() error {
	var err error
	s.shader, err = graphics.NewShader(
		filepath.Join(s.shaderDir, "skybox.vert"),
		filepath.Join(s.shaderDir, "skybox.frag"))
	if err != nil {
		return err
	}
	faces, err := assets.LoadCubemap(s.faceDir)
	if err != nil {
		slog.Warn("skybox faces unavailable, using plain sky", "dir", s.faceDir, "err", err)
		sky := assets.Solid(135, 180, 235, 255)
		faces = [6]*image.RGBA{sky, sky, sky, sky, sky, sky}
	}
	s.cubemap = graphics.NewCubemap(faces)
	return nil
}

// Layer puts the skybox behind all opaque geometry.
func (s *Skybox) Layer() layer.Layer { return layer.Sky }

func (s *Skybox) Shaders() []*graphics.Shader {
	return []*graphics.Shader{s.shader}
}

func (s *Skybox) Render(ctx renderer.RenderContext) {
	defer profiling.Track("skybox.Render")()

	view := ctx.View.Mat3().Mat4()

	gl.DepthFunc(gl.LEQUAL)
	gl.StencilMask(0x00)
	s.shader.Use()
	s.shader.SetMatrix4("vp", ctx.Proj.Mul4(view))
	s.shader.SetInt("cubemap", 0)
	s.cubemap.Bind(0)
	graphics.Upload(s.mesh).Draw()
	gl.DepthFunc(gl.LESS)
}

func (s *Skybox) Dispose() {
	s.cubemap.Delete()
	s.shader.Delete()
}

func (s *Skybox) SetViewport(width, height int) {}
