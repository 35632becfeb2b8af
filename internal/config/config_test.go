package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"playgroundgl/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Scene(), 12)
	assert.True(t, cfg.Picking.Required)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1024

[render]
mode = "points"

[log]
level = "debug"

[[objects]]
kind = "box"
position = [1.0, 2.0, 3.0]

[[objects]]
name = "lamp"
kind = "light"
color = [1.0, 0.0, 0.0]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep their default")
	assert.Equal(t, app.Points, cfg.RenderMode())

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	objs := cfg.Scene()
	require.Len(t, objs, 2)
	assert.Equal(t, [3]float32{1, 2, 3}, objs[0].Position)
	assert.Equal(t, "lamp", objs[1].Name)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[window]\nfullscreen = true\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"size":    "[window]\nwidth = 0\n",
		"mode":    "[render]\nmode = \"toon\"\n",
		"level":   "[log]\nlevel = \"loud\"\n",
		"kind":    "[[objects]]\nkind = \"teapot\"\n",
		"outline": "[render]\noutline_scale = 0.5\n",
		"range":   "[lighting]\nflashlight_yaw = [1.0, -1.0]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[window\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
