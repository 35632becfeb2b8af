package picking

import (
	"sync"

	"playgroundgl/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Pass draws the registry into the pick buffer.
type Pass struct {
	buf *Buffer
}

// NewPass returns the ID-encoding pass for buf.
func NewPass(buf *Buffer) *Pass {
	return &Pass{buf: buf}
}

// Begin binds and clears the pick buffer. The returned func restores the
// default target; it is safe to call more than once, so callers can both
// defer it and call it early. On a destroyed buffer Begin does nothing.
//
//	defer pass.Begin()()
func (p *Pass) Begin() (end func()) {
	if p.buf.Destroyed() {
		return func() {}
	}
	t := p.buf.target
	t.Bind()
	t.Clear()
	var once sync.Once
	return func() { once.Do(t.Unbind) }
}

// Encode redraws every object in registry order with ID index+1, so after
// it returns each pixel holds the ID of the nearest object covering it, or
// None. viewProj is projection * view for the frame being picked.
func (p *Pass) Encode(reg *scene.Registry, viewProj mgl32.Mat4) {
	if p.buf.Destroyed() {
		return
	}
	defer p.Begin()()

	t := p.buf.target
	for i, o := range reg.Objects() {
		t.DrawID(o.Mesh, viewProj.Mul4(o.Model), uint32(IDForIndex(i)))
	}
}
