// Package softdevice rasterises ID passes on the CPU. It follows the GL
// conventions the picking code relies on: bottom-left framebuffer origin,
// depth range [0,1] cleared to 1, LESS depth test, no face culling.
package softdevice

import (
	"fmt"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// Device creates software ID targets.
type Device struct {
	// Incomplete makes every NewIDTarget call fail, mimicking a driver that
	// rejects the attachment formats.
	Incomplete bool
}

// New returns a software device.
func New() *Device {
	return &Device{}
}

// NewIDTarget allocates color and depth planes of width x height.
func (d *Device) NewIDTarget(width, height int) (gpu.IDTarget, error) {
	if d.Incomplete || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software target %dx%d: %w", width, height, gpu.ErrIncompleteTarget)
	}
	return &Target{
		width:  width,
		height: height,
		color:  make([]uint32, width*height),
		depth:  make([]float32, width*height),
	}, nil
}

// Target is a software IDTarget. The bind and release counters let tests
// check scope handling.
type Target struct {
	width, height int
	color         []uint32
	depth         []float32

	bound    bool
	Binds    int
	Unbinds  int
	Releases int
}

func (t *Target) Bind() {
	t.bound = true
	t.Binds++
}

func (t *Target) Unbind() {
	t.bound = false
	t.Unbinds++
}

// Bound reports whether the target is the active draw destination.
func (t *Target) Bound() bool {
	return t.bound
}

func (t *Target) Clear() {
	clear(t.color)
	for i := range t.depth {
		t.depth[i] = 1
	}
}

func (t *Target) DrawID(mesh *assets.Mesh, mvp mgl32.Mat4, id uint32) {
	if t.color == nil || mesh == nil {
		return
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		var tri [3]screenVertex
		visible := true
		for k := 0; k < 3; k++ {
			v, ok := t.project(mesh.Vertices[mesh.Indices[i+k]].Position, mvp)
			if !ok {
				visible = false
				break
			}
			tri[k] = v
		}
		if visible {
			t.fillTriangle(tri, id)
		}
	}
}

func (t *Target) ReadPixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= t.width || y >= t.height || t.color == nil {
		return 0
	}
	return t.color[y*t.width+x]
}

func (t *Target) Size() (int, int) {
	return t.width, t.height
}

func (t *Target) Release() {
	t.color = nil
	t.depth = nil
	t.Releases++
}
