package picking

import (
	"log/slog"

	"playgroundgl/internal/gpu"
	"playgroundgl/internal/scene"
	"playgroundgl/internal/selection"

	"github.com/go-gl/mathgl/mgl32"
)

// Picker bundles the pick buffer with its pass and resolver.
type Picker struct {
	buf      *Buffer
	pass     *Pass
	resolver *Resolver
}

// Result describes what one frame's picking step did.
type Result struct {
	Encoded  bool
	Resolved bool
	Hit      bool
	Index    int
	Selected bool
}

// New allocates the pick buffer and wires the pass and resolver to it.
func New(dev gpu.Device, width, height int) (*Picker, error) {
	buf, err := NewBuffer(dev, width, height)
	if err != nil {
		return nil, err
	}
	return &Picker{buf: buf, pass: NewPass(buf), resolver: NewResolver(buf)}, nil
}

// Pass returns the ID-encoding pass.
func (p *Picker) Pass() *Pass {
	return p.pass
}

// Resolver returns the click resolver.
func (p *Picker) Resolver() *Resolver {
	return p.resolver
}

// Step runs the picking part of a frame. In Selecting mode the registry is
// re-encoded, then a pending click, if any, is resolved against that fresh
// buffer and toggles the hit object's selection.
func (p *Picker) Step(reg *scene.Registry, viewProj mgl32.Mat4, ctl *selection.Controller) Result {
	var res Result
	if ctl.Mode() != selection.Selecting {
		return res
	}
	p.pass.Encode(reg, viewProj)
	res.Encoded = true

	click, ok := ctl.TakeClick()
	if !ok {
		return res
	}
	res.Resolved = true
	res.Index, res.Hit = p.resolver.Resolve(click.X, click.Y)
	if !res.Hit {
		return res
	}
	res.Selected = ctl.Selection().Toggle(res.Index)
	name := ""
	if o := reg.At(res.Index); o != nil {
		name = o.Name
	}
	slog.Info("selection toggled", "index", res.Index, "object", name, "selected", res.Selected)
	return res
}

// Destroy releases the pick buffer.
func (p *Picker) Destroy() {
	p.buf.Destroy()
}
