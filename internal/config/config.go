// Package config loads the demo settings from a TOML file layered over
// built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"playgroundgl/internal/app"
	"playgroundgl/internal/scene"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window   Window       `toml:"window"`
	Camera   Camera       `toml:"camera"`
	Render   Render       `toml:"render"`
	Picking  Picking      `toml:"picking"`
	Lighting Lighting     `toml:"lighting"`
	Assets   Assets       `toml:"assets"`
	Log      Log          `toml:"log"`
	Objects  []scene.Spec `toml:"objects"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
	// FPSLimit caps the frame rate when VSync is off. Zero means uncapped.
	FPSLimit int `toml:"fps_limit"`
	// SlowFrameMS logs a warning for frames slower than this. Zero disables it.
	SlowFrameMS int `toml:"slow_frame_ms"`
}

// Camera angles are in radians.
type Camera struct {
	Position    [3]float32 `toml:"position"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
}

type Render struct {
	ClearColor    [3]float32 `toml:"clear_color"`
	Mode          string     `toml:"mode"`
	OutlineColor  [3]float32 `toml:"outline_color"`
	OutlineScale  float32    `toml:"outline_scale"`
	RotationSpeed float32    `toml:"rotation_speed"`
	GroundTiling  float32    `toml:"ground_tiling"`
}

// Picking.Required makes a pick buffer setup failure fatal. When false the
// demo runs without selection.
type Picking struct {
	Required bool `toml:"required"`
}

type Lighting struct {
	Sun          bool       `toml:"sun"`
	Flashlight   bool       `toml:"flashlight"`
	SunDirection [3]float32 `toml:"sun_direction"`
	// Flashlight steering bounds, radians.
	FlashlightPitch [2]float32 `toml:"flashlight_pitch"`
	FlashlightYaw   [2]float32 `toml:"flashlight_yaw"`
}

type Assets struct {
	ShaderDir    string `toml:"shader_dir"`
	TextureDir   string `toml:"texture_dir"`
	SkyboxDir    string `toml:"skybox_dir"`
	BoxTexture   string `toml:"box_texture"`
	WatchShaders bool   `toml:"watch_shaders"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "playgroundgl", VSync: true, SlowFrameMS: 50},
		Camera: Camera{
			Position:    [3]float32{0, 0, -3},
			Yaw:         1.5707964,
			Speed:       6,
			Sensitivity: 0.002,
		},
		Render: Render{
			ClearColor:    [3]float32{0.1, 0.1, 0.12},
			Mode:          app.Shaded.String(),
			OutlineColor:  [3]float32{1, 0.55, 0.1},
			OutlineScale:  1.06,
			RotationSpeed: 1,
			GroundTiling:  20,
		},
		Picking: Picking{Required: true},
		Lighting: Lighting{
			Sun:             true,
			Flashlight:      false,
			SunDirection:    [3]float32{-0.3, -1, -0.2},
			FlashlightPitch: [2]float32{-0.4, 0.4},
			FlashlightYaw:   [2]float32{-0.6, 0.6},
		},
		Assets: Assets{
			ShaderDir:  "assets/shaders",
			TextureDir: "assets/textures",
			SkyboxDir:  "assets/skybox",
			BoxTexture: "box.png",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over Default. An empty path returns the defaults. Keys
// the Config does not declare are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%s: %w: %s", path, ErrInvalid, strict.String())
		}
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit < 0 || c.Window.SlowFrameMS < 0 {
		return fmt.Errorf("%w: negative frame limits", ErrInvalid)
	}
	if c.Camera.Speed <= 0 {
		return fmt.Errorf("%w: camera speed %v", ErrInvalid, c.Camera.Speed)
	}
	if c.Camera.Sensitivity <= 0 {
		return fmt.Errorf("%w: camera sensitivity %v", ErrInvalid, c.Camera.Sensitivity)
	}
	if _, err := app.ParseRenderMode(c.Render.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Render.OutlineScale < 1 {
		return fmt.Errorf("%w: outline scale %v below 1", ErrInvalid, c.Render.OutlineScale)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, r := range [][2]float32{c.Lighting.FlashlightPitch, c.Lighting.FlashlightYaw} {
		if r[0] > r[1] {
			return fmt.Errorf("%w: flashlight range %v is inverted", ErrInvalid, r)
		}
	}
	for i, o := range c.Objects {
		if _, err := scene.ParseKind(o.Kind); err != nil {
			return fmt.Errorf("%w: object %d: %v", ErrInvalid, i, err)
		}
	}
	return nil
}

// LogLevel parses Log.Level as slog does ("debug", "info", "warn", "error").
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}

// RenderMode returns the parsed start-up render mode.
func (c Config) RenderMode() app.RenderMode {
	m, _ := app.ParseRenderMode(c.Render.Mode)
	return m
}

// Scene returns the configured objects, or the demo scene when none are set.
func (c Config) Scene() []scene.Spec {
	if len(c.Objects) == 0 {
		return scene.DefaultSpecs()
	}
	return c.Objects
}
