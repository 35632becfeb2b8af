package main

import (
	"log/slog"
	"time"

	"playgroundgl/internal/app"
	"playgroundgl/internal/camera"
	"playgroundgl/internal/gpu/gldevice"
	renderer "playgroundgl/internal/graphics/renderer"
	"playgroundgl/internal/input"
	"playgroundgl/internal/lighting"
	"playgroundgl/internal/picking"
	"playgroundgl/internal/profiling"
	"playgroundgl/internal/scene"
	"playgroundgl/internal/shaderwatch"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// flashlightTurnRate is how fast held arrow keys steer the flashlight, rad/s.
const flashlightTurnRate = 1.0

// FrameLoop owns the per-frame state of a windowed session.
type FrameLoop struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	registry *scene.Registry
	camera   *camera.Camera
	state    *app.State
	input    *input.InputManager

	// picker and pickDevice are nil when picking is disabled.
	picker     *picking.Picker
	pickDevice *gldevice.Device
	watcher    *shaderwatch.Watcher

	flashlight lighting.Flashlight
	rotSpeed   float32
	aspect     float32

	prof       *profiling.Profiler
	slowFrame  time.Duration
	fpsLimiter *FPSLimiter

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// Run ticks until the window is asked to close.
func (fl *FrameLoop) Run() {
	fl.lastTime = time.Now()
	fl.lastFPSCheckTime = fl.lastTime
	for !fl.window.ShouldClose() {
		fl.tick()
	}
}

func (fl *FrameLoop) tick() {
	fl.prof.BeginFrame()
	now := time.Now()
	dt := float32(now.Sub(fl.lastTime).Seconds())
	fl.lastTime = now

	func() { defer fl.prof.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	fl.handleInputActions(dt)
	fl.updateScene(dt)
	fl.reloadShaders()
	fl.renderFrame(dt)

	func() { defer fl.prof.Track("glfw.SwapBuffers")(); fl.window.SwapBuffers() }()

	fl.input.PostUpdate()
	fl.prof.EndFrame(fl.slowFrame)

	fl.frames++
	if time.Since(fl.lastFPSCheckTime) >= time.Second {
		slog.Debug("fps", "frames", fl.frames, "top", fl.prof.TopN(3))
		fl.frames = 0
		fl.lastFPSCheckTime = time.Now()
	}
	fl.fpsLimiter.Wait()
}

func (fl *FrameLoop) handleInputActions(dt float32) {
	im := fl.input
	st := fl.state

	if im.JustPressed(input.ActionQuit) {
		fl.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleMode) {
		mode := st.Controller.ToggleMode()
		slog.Info("mode", "mode", mode)
	}
	if im.JustPressed(input.ActionCycleRenderMode) {
		slog.Info("render mode", "mode", st.CycleRenderMode())
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		slog.Info("render mode", "mode", st.ToggleWireframe())
	}
	if im.JustPressed(input.ActionToggleSun) {
		slog.Info("sun", "on", st.ToggleSun())
	}
	if im.JustPressed(input.ActionToggleFlashlight) {
		slog.Info("flashlight", "on", st.ToggleFlashlight())
	}

	var dPitch, dYaw float32
	if im.IsActive(input.ActionFlashlightUp) {
		dPitch += flashlightTurnRate * dt
	}
	if im.IsActive(input.ActionFlashlightDown) {
		dPitch -= flashlightTurnRate * dt
	}
	if im.IsActive(input.ActionFlashlightRight) {
		dYaw += flashlightTurnRate * dt
	}
	if im.IsActive(input.ActionFlashlightLeft) {
		dYaw -= flashlightTurnRate * dt
	}
	if dPitch != 0 || dYaw != 0 {
		st.SteerFlashlight(dPitch, dYaw)
		st.FlashlightPitch, st.FlashlightYaw = fl.flashlight.Clamp(st.FlashlightPitch, st.FlashlightYaw)
	}

	if im.JustPressed(input.ActionMouseLeft) && fl.picker != nil {
		x, y := im.Cursor()
		st.Controller.QueueClick(int(x), int(y))
	}
}

func (fl *FrameLoop) updateScene(dt float32) {
	defer fl.prof.Track("scene.Update")()

	fl.camera.Move(camera.Movement{
		Forward: fl.input.IsActive(input.ActionMoveForward),
		Back:    fl.input.IsActive(input.ActionMoveBackward),
		Left:    fl.input.IsActive(input.ActionMoveLeft),
		Right:   fl.input.IsActive(input.ActionMoveRight),
	}, dt)
	if s := fl.input.TakeScroll(); s != 0 {
		fl.camera.Scroll(s)
	}
	fl.registry.Update(dt, fl.rotSpeed)
}

// reloadShaders applies queued source edits on the GL thread.
func (fl *FrameLoop) reloadShaders() {
	if fl.watcher == nil {
		return
	}
	for _, file := range fl.watcher.Drain() {
		if fl.pickDevice != nil {
			fl.renderer.ReloadShaders(file, fl.pickDevice.Shader())
		} else {
			fl.renderer.ReloadShaders(file)
		}
	}
}

// renderFrame draws the main pass and then, in Selecting mode, the ID pass
// and any pending click, all before the buffer swap.
func (fl *FrameLoop) renderFrame(dt float32) {
	view := fl.camera.View()
	proj := fl.camera.Projection(fl.aspect)

	fl.renderer.Render(renderer.RenderContext{
		Camera:   fl.camera,
		Registry: fl.registry,
		State:    fl.state,
		DT:       float64(dt),
		View:     view,
		Proj:     proj,
	})

	if fl.picker == nil {
		return
	}
	func() {
		defer fl.prof.Track("picking.Step")()
		fl.picker.Step(fl.registry, proj.Mul4(view), fl.state.Controller)
	}()
}
