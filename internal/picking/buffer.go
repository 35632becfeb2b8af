package picking

import (
	"fmt"
	"log/slog"

	"playgroundgl/internal/gpu"
)

// ErrIncompleteTarget reports that the pick buffer could not be created.
var ErrIncompleteTarget = gpu.ErrIncompleteTarget

// Buffer owns the off-screen ID target. It is allocated once at a fixed size
// and released exactly once.
type Buffer struct {
	target        gpu.IDTarget
	width, height int
}

// NewBuffer allocates a width x height pick buffer on dev. Any failure is an
// initialization error wrapping ErrIncompleteTarget.
func NewBuffer(dev gpu.Device, width, height int) (*Buffer, error) {
	target, err := dev.NewIDTarget(width, height)
	if err != nil {
		return nil, fmt.Errorf("pick buffer %dx%d: %w", width, height, err)
	}
	return &Buffer{target: target, width: width, height: height}, nil
}

// Size returns the buffer resolution.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Destroy releases the device target. Calling it again is a no-op.
func (b *Buffer) Destroy() {
	if b.target == nil {
		return
	}
	slog.Debug("releasing pick buffer", "width", b.width, "height", b.height)
	b.target.Release()
	b.target = nil
}

// Destroyed reports whether Destroy has run.
func (b *Buffer) Destroyed() bool {
	return b.target == nil
}
