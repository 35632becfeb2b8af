package lighting

import (
	"testing"

	"playgroundgl/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder stores the last value written per uniform name.
type recorder struct {
	bools  map[string]bool
	ints   map[string]int32
	floats map[string]float32
	vecs   map[string]mgl32.Vec3
}

func newRecorder() *recorder {
	return &recorder{
		bools:  map[string]bool{},
		ints:   map[string]int32{},
		floats: map[string]float32{},
		vecs:   map[string]mgl32.Vec3{},
	}
}

func (r *recorder) SetBool(name string, v bool)     { r.bools[name] = v }
func (r *recorder) SetInt(name string, v int32)     { r.ints[name] = v }
func (r *recorder) SetFloat(name string, v float32) { r.floats[name] = v }
func (r *recorder) SetVector3(name string, x, y, z float32) {
	r.vecs[name] = mgl32.Vec3{x, y, z}
}

func TestSunDirectionInViewSpace(t *testing.T) {
	r := newRecorder()
	view := mgl32.HomogRotate3DY(mgl32.DegToRad(90))
	Sun{Direction: mgl32.Vec3{1, 0, 0}, On: true}.Apply(r, view)

	want := view.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	assert.True(t, r.vecs["sun.direction"].ApproxEqual(want))
	assert.True(t, r.bools["sun.is_on"])
	assert.Equal(t, float32(0.9), r.floats["sun.diffuse_intensity"])
	assert.Equal(t, float32(0.5), r.floats["sun.specular_intensity"])
	assert.Equal(t, float32(1), r.floats["sun.strength"])
}

func TestSunTranslationIgnored(t *testing.T) {
	r := newRecorder()
	Sun{Direction: mgl32.Vec3{0, -1, 0}}.Apply(r, mgl32.Translate3D(5, 5, 5))
	assert.True(t, r.vecs["sun.direction"].ApproxEqual(mgl32.Vec3{0, -1, 0}))
	assert.False(t, r.bools["sun.is_on"])
}

func TestFlashlightClampsSteering(t *testing.T) {
	f := Flashlight{MinPitch: -0.4, MaxPitch: 0.4, MinYaw: -0.6, MaxYaw: 0.6, On: true}

	assert.True(t, f.Direction(0, 0).ApproxEqual(mgl32.Vec3{0, 0, -1}))
	assert.True(t, f.Direction(3, -3).ApproxEqual(f.Direction(0.4, -0.6)))

	p, y := f.Clamp(-1, 1)
	assert.Equal(t, float32(-0.4), p)
	assert.Equal(t, float32(0.6), y)

	r := newRecorder()
	f.Apply(r, 0, 0)
	assert.True(t, r.bools["flashlight.is_on"])
	assert.Equal(t, float32(0.9), r.floats["flashlight.strength"])
	assert.InDelta(t, 1, r.vecs["flashlight.direction"].Len(), 1e-5)
}

func TestPointLightsCappedAndInViewSpace(t *testing.T) {
	var lights []*scene.Object
	for i := 0; i < MaxPointLights+2; i++ {
		lights = append(lights, scene.NewLight("l", nil, mgl32.Vec3{float32(i), 0, 0}, mgl32.Vec3{1, 0, 0}))
	}
	view := mgl32.Translate3D(0, 0, -10)

	r := newRecorder()
	n := ApplyPointLights(r, view, lights)
	require.Equal(t, MaxPointLights, n)
	assert.Equal(t, int32(MaxPointLights), r.ints["num_point_lights"])
	assert.True(t, r.vecs["point_lights[2].position"].ApproxEqual(mgl32.Vec3{2, 0, -10}))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, r.vecs["point_lights[0].color"])
	_, ok := r.vecs["point_lights[4].position"]
	assert.False(t, ok)
}
