// Package headless runs the frame pipeline without a window, picking
// against the software device. It replays scripted clicks and reports the
// resulting selection.
package headless

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"playgroundgl/internal/app"
	"playgroundgl/internal/assets"
	"playgroundgl/internal/camera"
	"playgroundgl/internal/config"
	"playgroundgl/internal/gpu"
	"playgroundgl/internal/gpu/softdevice"
	"playgroundgl/internal/picking"
	"playgroundgl/internal/profiling"
	"playgroundgl/internal/scene"
	"playgroundgl/internal/selection"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameTime is the fixed simulation step of a headless frame.
const FrameTime = 1.0 / 60

// ParseClick parses "x,y" window coordinates.
func ParseClick(s string) (selection.Click, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return selection.Click{}, fmt.Errorf("click %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return selection.Click{}, fmt.Errorf("click %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return selection.Click{}, fmt.Errorf("click %q: %w", s, err)
	}
	return selection.Click{X: x, Y: y}, nil
}

// Options configures a run. Frames is raised to len(Clicks) if smaller.
type Options struct {
	Frames int
	Clicks []selection.Click
	// Device defaults to a software device.
	Device gpu.Device
}

// Result is the state after the last frame.
type Result struct {
	Frames   int
	Selected []int
	Names    []string
	Hits     int
}

// Run simulates opts.Frames frames of the scene described by cfg. One
// scripted click is fed per frame, in Selecting mode.
func Run(cfg config.Config, opts Options) (Result, error) {
	dev := opts.Device
	if dev == nil {
		dev = softdevice.New()
	}
	reg, err := scene.Populate(assets.NewPool(), cfg.Scene())
	if err != nil {
		return Result{}, fmt.Errorf("populate scene: %w", err)
	}
	picker, err := picking.New(dev, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return Result{}, err
	}
	defer picker.Destroy()

	cam := camera.New(mgl32.Vec3(cfg.Camera.Position), cfg.Camera.Yaw, cfg.Camera.Pitch,
		cfg.Camera.Speed, cfg.Camera.Sensitivity)
	state := app.NewState(cfg.RenderMode(), cfg.Lighting.Sun, cfg.Lighting.Flashlight)
	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	prof := profiling.New()

	frames := max(opts.Frames, len(opts.Clicks))
	var res Result
	for f := 0; f < frames; f++ {
		prof.BeginFrame()
		func() {
			defer prof.Track("scene.Update")()
			reg.Update(FrameTime, cfg.Render.RotationSpeed)
		}()

		if f < len(opts.Clicks) {
			if state.Controller.Mode() != selection.Selecting {
				state.Controller.ToggleMode()
			}
			c := opts.Clicks[f]
			state.Controller.QueueClick(c.X, c.Y)
		}

		viewProj := cam.Projection(aspect).Mul4(cam.View())
		var step picking.Result
		func() {
			defer prof.Track("picking.Step")()
			step = picker.Step(reg, viewProj, state.Controller)
		}()
		if step.Hit {
			res.Hits++
		}
		prof.EndFrame(0)
		res.Frames++
	}

	res.Selected = state.Controller.Selection().Indices()
	for _, i := range res.Selected {
		res.Names = append(res.Names, reg.At(i).Name)
	}
	slog.Info("headless run finished", "frames", res.Frames, "hits", res.Hits, "selected", res.Names)
	return res, nil
}
