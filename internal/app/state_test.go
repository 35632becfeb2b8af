package app

import (
	"testing"

	"playgroundgl/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderModeCycle(t *testing.T) {
	s := NewState(Shaded, true, false)
	assert.Equal(t, Wireframe, s.CycleRenderMode())
	assert.Equal(t, Points, s.CycleRenderMode())
	assert.Equal(t, Shaded, s.CycleRenderMode())
}

func TestToggleWireframe(t *testing.T) {
	s := NewState(Points, true, false)
	assert.Equal(t, Wireframe, s.ToggleWireframe())
	assert.Equal(t, Shaded, s.ToggleWireframe())
	assert.Equal(t, Wireframe, s.ToggleWireframe())
}

func TestParseRenderMode(t *testing.T) {
	for _, m := range []RenderMode{Shaded, Wireframe, Points} {
		got, err := ParseRenderMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseRenderMode("Wireframe")
	require.NoError(t, err)
	assert.Equal(t, Wireframe, got)

	_, err = ParseRenderMode("toon")
	assert.Error(t, err)
}

func TestLightToggles(t *testing.T) {
	s := NewState(Shaded, true, false)
	assert.False(t, s.ToggleSun())
	assert.True(t, s.ToggleFlashlight())
	assert.True(t, s.ToggleSun())
}

func TestNewStateStartsNavigatingWithEmptySelection(t *testing.T) {
	s := NewState(Shaded, true, true)
	assert.Equal(t, selection.Navigating, s.Controller.Mode())
	assert.Equal(t, 0, s.Controller.Selection().Len())
	assert.False(t, s.Controller.Pending())
}
