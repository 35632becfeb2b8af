package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/config"
	"playgroundgl/internal/gpu/gldevice"
	"playgroundgl/internal/graphics/renderables/ground"
	"playgroundgl/internal/graphics/renderables/objects"
	"playgroundgl/internal/graphics/renderables/skybox"
	renderer "playgroundgl/internal/graphics/renderer"
	"playgroundgl/internal/lighting"
	"playgroundgl/internal/picking"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const groundSize = 100

func setupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}
	slog.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

func setupRenderer(cfg config.Config, pool *assets.Pool) (*renderer.Renderer, error) {
	pool.Put(assets.Ground(cfg.Render.GroundTiling))

	texture := func(name string) string {
		if name == "" {
			return ""
		}
		return filepath.Join(cfg.Assets.TextureDir, name)
	}
	lc := cfg.Lighting
	objs := objects.NewObjects(objects.Options{
		ShaderDir: cfg.Assets.ShaderDir,
		Texture:   texture(cfg.Assets.BoxTexture),
		Sun:       lighting.Sun{Direction: mgl32.Vec3(lc.SunDirection)},
		Flashlight: lighting.Flashlight{
			MinPitch: lc.FlashlightPitch[0], MaxPitch: lc.FlashlightPitch[1],
			MinYaw: lc.FlashlightYaw[0], MaxYaw: lc.FlashlightYaw[1],
		},
	})
	gr := ground.NewGround(cfg.Assets.ShaderDir, texture("ground.png"), groundSize, pool.MustGet(assets.MeshGround))
	sky := skybox.NewSkybox(cfg.Assets.ShaderDir, cfg.Assets.SkyboxDir, pool.MustGet(assets.MeshSkybox))

	outline := objects.NewOutline(cfg.Assets.ShaderDir, mgl32.Vec3(cfg.Render.OutlineColor), cfg.Render.OutlineScale)

	// The renderer sorts by layer: ground and objects, then sky, then the
	// outline. The outline skips the depth test and must stay last.
	return renderer.NewRenderer(mgl32.Vec3(cfg.Render.ClearColor), gr, objs, sky, outline)
}

// setupPicking builds the GL pick device and a buffer at window resolution,
// so window coordinates address it directly. With picking not
// required, a failure is logged and a nil picker is returned.
func setupPicking(cfg config.Config, width, height int) (*gldevice.Device, *picking.Picker, error) {
	dev, err := gldevice.New(cfg.Assets.ShaderDir)
	if err == nil {
		var p *picking.Picker
		p, err = picking.New(dev, width, height)
		if err == nil {
			return dev, p, nil
		}
		dev.Delete()
	}
	if cfg.Picking.Required {
		return nil, nil, fmt.Errorf("picking: %w", err)
	}
	if errors.Is(err, picking.ErrIncompleteTarget) {
		slog.Warn("pick buffer unavailable, selection disabled", "err", err)
	} else {
		slog.Warn("picking setup failed, selection disabled", "err", err)
	}
	return nil, nil, nil
}
