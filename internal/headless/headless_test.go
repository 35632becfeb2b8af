package headless

import (
	"testing"

	"playgroundgl/internal/config"
	"playgroundgl/internal/gpu/softdevice"
	"playgroundgl/internal/picking"
	"playgroundgl/internal/scene"
	"playgroundgl/internal/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClick(t *testing.T) {
	c, err := ParseClick("120, 45")
	require.NoError(t, err)
	assert.Equal(t, selection.Click{X: 120, Y: 45}, c)

	for _, bad := range []string{"", "12", "a,1", "1,b"} {
		_, err := ParseClick(bad)
		assert.Error(t, err, bad)
	}
}

// oneBox is a single static box filling the view centre.
func oneBox() config.Config {
	cfg := config.Default()
	cfg.Render.RotationSpeed = 0
	cfg.Objects = []scene.Spec{{Name: "front", Kind: "box", Position: [3]float32{0, 0, 0}}}
	return cfg
}

func TestCentreClickSelectsBoxInFront(t *testing.T) {
	cfg := oneBox()
	res, err := Run(cfg, Options{Clicks: []selection.Click{{X: 400, Y: 300}}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Frames)
	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, []int{0}, res.Selected)
	assert.Equal(t, []string{"front"}, res.Names)
}

func TestSecondClickDeselects(t *testing.T) {
	res, err := Run(oneBox(), Options{
		Frames: 5,
		Clicks: []selection.Click{{X: 400, Y: 300}, {X: 400, Y: 300}},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Frames)
	assert.Equal(t, 2, res.Hits)
	assert.Empty(t, res.Selected)
}

func TestCornerClickMisses(t *testing.T) {
	res, err := Run(oneBox(), Options{Clicks: []selection.Click{{X: 2, Y: 2}}})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Hits)
	assert.Empty(t, res.Selected)
}

func TestNoClicksNoSelection(t *testing.T) {
	res, err := Run(config.Default(), Options{Frames: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Frames)
	assert.Empty(t, res.Selected)
}

func TestIncompleteDeviceFails(t *testing.T) {
	_, err := Run(oneBox(), Options{Frames: 1, Device: &softdevice.Device{Incomplete: true}})
	assert.ErrorIs(t, err, picking.ErrIncompleteTarget)
}
