package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock advances by step on every reading.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestTrackAccumulatesPerName(t *testing.T) {
	p := New()
	clk := &fakeClock{step: time.Millisecond}
	p.now = clk.now

	p.BeginFrame()
	p.Track("a")()
	p.Track("a")()
	p.Track("b")()

	snap := p.Snapshot()
	assert.Equal(t, 2*time.Millisecond, snap["a"])
	assert.Equal(t, time.Millisecond, snap["b"])
	assert.Equal(t, "a:2ms, b:1ms", p.TopN(5))
	assert.Equal(t, "a:2ms", p.TopN(1))
}

func TestBeginFrameResets(t *testing.T) {
	p := New()
	p.Track("x")()
	p.BeginFrame()
	assert.Empty(t, p.Snapshot())
	assert.Equal(t, "", p.TopN(3))
}

func TestEndFrameMeasuresFromBegin(t *testing.T) {
	p := New()
	clk := &fakeClock{step: 20 * time.Millisecond}
	p.now = clk.now

	p.BeginFrame()
	assert.Equal(t, 20*time.Millisecond, p.EndFrame(10*time.Millisecond))
}

func TestFormatMs(t *testing.T) {
	assert.Equal(t, "4.2ms", formatMs(4200*time.Microsecond))
	assert.Equal(t, "3ms", formatMs(3*time.Millisecond))
	assert.Equal(t, "0ms", formatMs(0))
}
