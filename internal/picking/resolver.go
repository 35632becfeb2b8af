package picking

import "log/slog"

// Resolver maps window coordinates to registry indices using the contents
// of the pick buffer.
type Resolver struct {
	buf *Buffer
}

// NewResolver returns a resolver reading from buf.
func NewResolver(buf *Buffer) *Resolver {
	return &Resolver{buf: buf}
}

// FramebufferY converts a top-left-origin window row to the bottom-left
// framebuffer row the device reads from.
func (r *Resolver) FramebufferY(windowY int) int {
	return r.buf.height - windowY
}

// ReadID reads the raw ID at framebuffer coordinate (x, y). Coordinates
// outside the buffer read as None.
func (r *Resolver) ReadID(x, fbY int) ObjectID {
	if r.buf.Destroyed() || x < 0 || fbY < 0 || x >= r.buf.width || fbY >= r.buf.height {
		return None
	}
	return ObjectID(r.buf.target.ReadPixel(x, fbY))
}

// Resolve returns the index of the object under window coordinate (x, y),
// or false when the pixel shows background.
func (r *Resolver) Resolve(x, y int) (int, bool) {
	fbY := r.FramebufferY(y)
	id := r.ReadID(x, fbY)
	idx, ok := id.Index()
	slog.Debug("pick resolved", "x", x, "y", y, "fb_y", fbY, "id", uint32(id))
	return idx, ok
}
