// Package gldevice implements the picking target on OpenGL 4.1: a
// framebuffer with an R32UI color texture and a DEPTH24_STENCIL8
// renderbuffer.
package gldevice

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/gpu"
	"playgroundgl/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Device draws ID passes with the id shader found in ShaderDir.
type Device struct {
	shader *graphics.Shader
}

// New compiles id.vert and id.frag from shaderDir. The GL context must be
// current.
func New(shaderDir string) (*Device, error) {
	sh, err := graphics.NewShader(filepath.Join(shaderDir, "id.vert"), filepath.Join(shaderDir, "id.frag"))
	if err != nil {
		return nil, err
	}
	return &Device{shader: sh}, nil
}

// Shader exposes the id program for hot reload.
func (d *Device) Shader() *graphics.Shader {
	return d.shader
}

func (d *Device) Delete() {
	d.shader.Delete()
}

// NewIDTarget builds the framebuffer and checks it for completeness.
func (d *Device) NewIDTarget(width, height int) (gpu.IDTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("id target %dx%d: %w", width, height, gpu.ErrIncompleteTarget)
	}
	t := &Target{dev: d, width: width, height: height}

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.GenTextures(1, &t.color)
	gl.BindTexture(gl.TEXTURE_2D, t.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32UI, int32(width), int32(height), 0,
		gl.RED_INTEGER, gl.UNSIGNED_INT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.color, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenRenderbuffers(1, &t.depthStencil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.depthStencil)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, t.depthStencil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Release()
		return nil, fmt.Errorf("framebuffer status 0x%x: %w", status, gpu.ErrIncompleteTarget)
	}
	return t, nil
}

// Target is the GL pick framebuffer.
type Target struct {
	dev           *Device
	width, height int
	fbo           uint32
	color         uint32
	depthStencil  uint32

	saved glState
}

// glState is the slice of default-framebuffer state the pick pass changes.
type glState struct {
	viewport    [4]int32
	polygon     [2]int32
	depthTest   bool
	depthFunc   int32
	depthMask   bool
	stencilMask int32
	stencilTest bool
}

func captureState() glState {
	var s glState
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	gl.GetIntegerv(gl.POLYGON_MODE, &s.polygon[0])
	s.depthTest = gl.IsEnabled(gl.DEPTH_TEST)
	gl.GetIntegerv(gl.DEPTH_FUNC, &s.depthFunc)
	gl.GetBooleanv(gl.DEPTH_WRITEMASK, &s.depthMask)
	gl.GetIntegerv(gl.STENCIL_WRITEMASK, &s.stencilMask)
	s.stencilTest = gl.IsEnabled(gl.STENCIL_TEST)
	return s
}

func (s glState) restore() {
	v := s.viewport
	gl.Viewport(v[0], v[1], v[2], v[3])
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(s.polygon[0]))
	setEnabled(gl.DEPTH_TEST, s.depthTest)
	setEnabled(gl.STENCIL_TEST, s.stencilTest)
	gl.DepthFunc(uint32(s.depthFunc))
	gl.DepthMask(s.depthMask)
	gl.StencilMask(uint32(s.stencilMask))
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Bind switches drawing to the target, sized to the full buffer and with
// solid polygon fill whatever render mode the main pass uses.
func (t *Target) Bind() {
	t.saved = captureState()
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, int32(t.width), int32(t.height))
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	gl.Disable(gl.STENCIL_TEST)
}

// Unbind restores the default framebuffer and every piece of state Bind
// changed.
func (t *Target) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	t.saved.restore()
}

// Clear zeroes IDs and resets depth and stencil. The clears honour the
// write masks, so both are opened first.
func (t *Target) Clear() {
	gl.DepthMask(true)
	gl.StencilMask(0xFF)
	zero := [4]uint32{}
	gl.ClearBufferuiv(gl.COLOR, 0, &zero[0])
	gl.ClearBufferfi(gl.DEPTH_STENCIL, 0, 1, 0)
}

func (t *Target) DrawID(mesh *assets.Mesh, mvp mgl32.Mat4, id uint32) {
	sh := t.dev.shader
	sh.Use()
	sh.SetMatrix4("mvp", mvp)
	sh.SetUint("object_id", id)
	graphics.Upload(mesh).Draw()
}

// ReadPixel reads a single texel. It blocks until the GPU has finished the
// pass.
func (t *Target) ReadPixel(x, y int) uint32 {
	var id uint32
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RED_INTEGER, gl.UNSIGNED_INT, gl.Ptr(&id))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return id
}

func (t *Target) Size() (int, int) {
	return t.width, t.height
}

func (t *Target) Release() {
	slog.Debug("deleting framebuffer and attachments", "fbo", t.fbo)
	if t.depthStencil != 0 {
		gl.DeleteRenderbuffers(1, &t.depthStencil)
	}
	if t.color != 0 {
		gl.DeleteTextures(1, &t.color)
	}
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
	}
	t.fbo, t.color, t.depthStencil = 0, 0, 0
}
