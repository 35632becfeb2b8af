package layer_test

import (
	"testing"

	"playgroundgl/internal/graphics/layer"

	"github.com/stretchr/testify/assert"
)

type pass struct {
	name  string
	layer layer.Layer
}

func layerOf(p pass) layer.Layer { return p.layer }

func names(ps []pass) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}
	return out
}

func TestOverlayDrawsAfterSky(t *testing.T) {
	ps := []pass{
		{"objects", layer.Opaque},
		{"outline", layer.Overlay},
		{"skybox", layer.Sky},
		{"ground", layer.Opaque},
	}
	layer.Sort(ps, layerOf)
	assert.Equal(t, []string{"objects", "ground", "skybox", "outline"}, names(ps))
}

func TestSortKeepsOrderWithinLayer(t *testing.T) {
	ps := []pass{
		{"c", layer.Opaque},
		{"a", layer.Opaque},
		{"b", layer.Opaque},
	}
	layer.Sort(ps, layerOf)
	assert.Equal(t, []string{"c", "a", "b"}, names(ps))
}

func TestLayerString(t *testing.T) {
	assert.Equal(t, "overlay", layer.Overlay.String())
	assert.Equal(t, "unknown", layer.Layer(9).String())
}
