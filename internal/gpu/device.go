// Package gpu describes the graphics-device capabilities the picking pass
// needs, so the same pass can run on OpenGL or on the software rasteriser.
package gpu

import (
	"errors"

	"playgroundgl/internal/assets"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrIncompleteTarget is returned when an off-screen target cannot be
// assembled (missing attachment or unsupported format).
var ErrIncompleteTarget = errors.New("render target incomplete")

// Device creates off-screen ID targets.
type Device interface {
	NewIDTarget(width, height int) (IDTarget, error)
}

// IDTarget is an off-screen render target with one uint32 color channel and
// a depth+stencil attachment. Framebuffer coordinates have their origin at
// the bottom-left corner.
type IDTarget interface {
	// Bind makes the target the active draw destination.
	Bind()
	// Unbind restores the default framebuffer.
	Unbind()
	// Clear zeroes the color attachment and resets depth and stencil.
	Clear()
	// DrawID submits mesh transformed by mvp, writing id to every fragment
	// that passes the depth test.
	DrawID(mesh *assets.Mesh, mvp mgl32.Mat4, id uint32)
	// ReadPixel returns the value stored at framebuffer coordinate (x, y).
	ReadPixel(x, y int) uint32
	// Size reports the fixed target resolution.
	Size() (width, height int)
	// Release frees the device resources.
	Release()
}
