package selection

import "log/slog"

// Mode decides what the mouse does.
type Mode int

const (
	// Navigating: mouse movement steers the camera.
	Navigating Mode = iota
	// Selecting: the cursor is free and clicks pick objects.
	Selecting
)

func (m Mode) String() string {
	if m == Selecting {
		return "selecting"
	}
	return "navigating"
}

// Click is a window-space position with the origin at the top-left corner.
type Click struct {
	X, Y int
}

// Controller owns the mode, the pending click and the selection set.
type Controller struct {
	mode    Mode
	set     *Set
	click   Click
	pending bool

	// OnModeChange runs after every mode transition. The frame loop uses it
	// to swap the cursor mode and reset relative mouse tracking.
	OnModeChange func(Mode)
}

// NewController starts in Navigating with nothing selected.
func NewController() *Controller {
	return &Controller{set: NewSet()}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Selection returns the selected set.
func (c *Controller) Selection() *Set {
	return c.set
}

// ToggleMode flips between Navigating and Selecting. Leaving Selecting drops
// an unconsumed click. The selection set is never touched.
func (c *Controller) ToggleMode() Mode {
	if c.mode == Selecting {
		c.mode = Navigating
		c.pending = false
	} else {
		c.mode = Selecting
	}
	slog.Debug("mode changed", "mode", c.mode)
	if c.OnModeChange != nil {
		c.OnModeChange(c.mode)
	}
	return c.mode
}

// QueueClick records a click for the next resolve. Clicks outside Selecting
// mode, or while another click is still pending, are dropped.
func (c *Controller) QueueClick(x, y int) bool {
	if c.mode != Selecting {
		return false
	}
	if c.pending {
		slog.Debug("click dropped, previous click not yet resolved", "x", x, "y", y)
		return false
	}
	c.click = Click{X: x, Y: y}
	c.pending = true
	return true
}

// TakeClick returns the pending click and clears it.
func (c *Controller) TakeClick() (Click, bool) {
	if !c.pending {
		return Click{}, false
	}
	c.pending = false
	return c.click, true
}

// Pending reports whether a click waits for resolution.
func (c *Controller) Pending() bool {
	return c.pending
}
