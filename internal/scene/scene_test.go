package scene_test

import (
	"math"
	"testing"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAssignsInsertionIndices(t *testing.T) {
	reg := scene.NewRegistry()
	cube := assets.Cube()
	for i := 0; i < 5; i++ {
		idx := reg.Add(scene.NewBox("b", cube, mgl32.Vec3{}, 0))
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, 5, reg.Len())
	for i, o := range reg.Objects() {
		assert.Equal(t, i, o.Index)
		assert.Same(t, o, reg.At(i))
	}
	assert.Nil(t, reg.At(-1))
	assert.Nil(t, reg.At(5))
}

func TestUpdateKeepsIndicesAndPositionOfBoxes(t *testing.T) {
	reg := scene.NewRegistry()
	box := scene.NewBox("b", assets.Cube(), mgl32.Vec3{1, 2, 3}, 1)
	reg.Add(box)
	before := box.Model

	reg.Update(0.5, 1)
	assert.Equal(t, 0, box.Index)
	assert.NotEqual(t, before, box.Model)
	assert.True(t, box.Position().ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, 1e-5))
}

func TestLightOrbitsAroundZ(t *testing.T) {
	light := scene.NewLight("l", assets.Cube(), mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1})
	quarter := float32(math.Pi/2) / scene.LightSpin
	light.Update(quarter, 1)
	assert.True(t, light.Position().ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5), light.Position())
}

func TestLightsFiltersKinds(t *testing.T) {
	pool := assets.NewPool()
	reg, err := scene.Populate(pool, scene.DefaultSpecs())
	require.NoError(t, err)
	assert.Equal(t, 12, reg.Len())

	lights := reg.Lights()
	require.Len(t, lights, 2)
	assert.Equal(t, 10, lights[0].Index)
	assert.Equal(t, 11, lights[1].Index)
	for _, l := range lights {
		assert.Equal(t, scene.KindLight, l.Kind)
	}
}

func TestPopulateErrors(t *testing.T) {
	pool := assets.NewPool()

	_, err := scene.Populate(pool, []scene.Spec{{Kind: "teapot"}})
	assert.ErrorContains(t, err, "teapot")

	_, err = scene.Populate(pool, []scene.Spec{{Kind: "model"}})
	assert.ErrorContains(t, err, "model path required")

	_, err = scene.Populate(pool, []scene.Spec{{Kind: "model", Model: "does/not/exist.glb"}})
	assert.Error(t, err)
}

func TestFitScaleNormalisesLargestExtent(t *testing.T) {
	assert.InDelta(t, 1, scene.FitScale(assets.Cube()), 1e-6)

	tall := assets.NewMesh("tall", []assets.Vertex{
		{Position: mgl32.Vec3{-1, 0, 0}},
		{Position: mgl32.Vec3{1, 4, 0}},
		{Position: mgl32.Vec3{0, 2, 0.5}},
	}, []uint32{0, 1, 2})
	assert.InDelta(t, 0.25, scene.FitScale(tall), 1e-6)

	flat := assets.NewMesh("point", []assets.Vertex{{}}, nil)
	assert.Equal(t, float32(1), scene.FitScale(flat))
	assert.Equal(t, float32(1), scene.FitScale(assets.NewMesh("empty", nil, nil)))
}

func TestPopulateNamesUnnamedObjects(t *testing.T) {
	reg, err := scene.Populate(assets.NewPool(), []scene.Spec{{}, {Kind: "light"}})
	require.NoError(t, err)
	assert.Equal(t, "box-0", reg.At(0).Name)
	assert.Equal(t, "light-1", reg.At(1).Name)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]scene.Kind{"": scene.KindBox, "box": scene.KindBox, "light": scene.KindLight, "model": scene.KindModel} {
		got, err := scene.ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if name != "" {
			assert.Equal(t, name, got.String())
		}
	}
}
