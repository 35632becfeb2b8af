// Package profiling accumulates per-frame CPU time by section name.
package profiling

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Profiler collects section totals for the frame in progress.
type Profiler struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	start  time.Time
	now    func() time.Time
}

func New() *Profiler {
	return &Profiler{totals: make(map[string]time.Duration), now: time.Now}
}

var std = New()

// Default returns the process-wide profiler used by Track.
func Default() *Profiler { return std }

// Track returns a stop function that records the elapsed time under name.
//
//	defer profiling.Track("render.Objects")()
func Track(name string) func() { return std.Track(name) }

func (p *Profiler) Track(name string) func() {
	start := p.now()
	return func() {
		d := p.now().Sub(start)
		p.mu.Lock()
		p.totals[name] += d
		p.mu.Unlock()
	}
}

// BeginFrame clears the totals and starts the frame clock.
func (p *Profiler) BeginFrame() {
	p.mu.Lock()
	clear(p.totals)
	p.start = p.now()
	p.mu.Unlock()
}

// EndFrame returns the frame duration and logs a warning with the heaviest
// sections when it exceeds budget. A zero budget disables the warning.
func (p *Profiler) EndFrame(budget time.Duration) time.Duration {
	p.mu.Lock()
	elapsed := p.now().Sub(p.start)
	p.mu.Unlock()
	if budget > 0 && elapsed > budget {
		slog.Warn("slow frame", "elapsed", elapsed, "budget", budget, "top", p.TopN(3))
	}
	return elapsed
}

// Snapshot returns a copy of the current totals.
func (p *Profiler) Snapshot() map[string]time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]time.Duration, len(p.totals))
	for k, v := range p.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, heaviest first, e.g.
// "render.Objects:4.2ms, picking.Encode:1ms".
func (p *Profiler) TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	snap := p.Snapshot()
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{k, v})
	}
	slices.SortFunc(list, func(a, b entry) int {
		if c := cmp.Compare(b.dur, a.dur); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.name+":"+formatMs(e.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
