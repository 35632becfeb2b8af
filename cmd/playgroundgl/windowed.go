package main

import (
	"fmt"
	"log/slog"
	"time"

	"playgroundgl/internal/app"
	"playgroundgl/internal/assets"
	"playgroundgl/internal/camera"
	"playgroundgl/internal/config"
	"playgroundgl/internal/graphics"
	"playgroundgl/internal/input"
	"playgroundgl/internal/lighting"
	"playgroundgl/internal/profiling"
	"playgroundgl/internal/scene"
	"playgroundgl/internal/shaderwatch"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func runWindowed(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	defer window.Destroy()

	pool := assets.NewPool()
	defer pool.Each(graphics.Release)

	registry, err := scene.Populate(pool, cfg.Scene())
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	slog.Info("scene populated", "objects", registry.Len(), "lights", len(registry.Lights()))

	r, err := setupRenderer(cfg, pool)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer r.Dispose()
	fbW, fbH := window.GetFramebufferSize()
	r.UpdateViewport(fbW, fbH)

	pickDev, picker, err := setupPicking(cfg, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	if picker != nil {
		defer pickDev.Delete()
		defer picker.Destroy()
	}

	var watcher *shaderwatch.Watcher
	if cfg.Assets.WatchShaders {
		watcher, err = shaderwatch.New(cfg.Assets.ShaderDir)
		if err != nil {
			slog.Warn("shader hot reload disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	lc := cfg.Lighting
	loop := &FrameLoop{
		window:     window,
		renderer:   r,
		registry:   registry,
		camera:     camera.New(mgl32.Vec3(cfg.Camera.Position), cfg.Camera.Yaw, cfg.Camera.Pitch, cfg.Camera.Speed, cfg.Camera.Sensitivity),
		state:      app.NewState(cfg.RenderMode(), lc.Sun, lc.Flashlight),
		input:      input.NewInputManager(),
		picker:     picker,
		pickDevice: pickDev,
		watcher:    watcher,
		flashlight: lighting.Flashlight{
			MinPitch: lc.FlashlightPitch[0], MaxPitch: lc.FlashlightPitch[1],
			MinYaw: lc.FlashlightYaw[0], MaxYaw: lc.FlashlightYaw[1],
		},
		rotSpeed:   cfg.Render.RotationSpeed,
		aspect:     float32(cfg.Window.Width) / float32(cfg.Window.Height),
		prof:       profiling.Default(),
		slowFrame:  time.Duration(cfg.Window.SlowFrameMS) * time.Millisecond,
		fpsLimiter: NewFPSLimiter(fpsLimit(cfg.Window)),
	}
	setupInputHandlers(window, loop)

	loop.Run()

	sel := loop.state.Controller.Selection().Indices()
	slog.Info("session ended", "selected", sel)
	return nil
}

func fpsLimit(w config.Window) int {
	if w.VSync {
		return 0
	}
	return w.FPSLimit
}
