package softdevice_test

import (
	"testing"

	"playgroundgl/internal/assets"
	"playgroundgl/internal/gpu"
	"playgroundgl/internal/gpu/softdevice"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *assets.Mesh {
	return assets.NewMesh("quad", []assets.Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
		{Position: mgl32.Vec3{1, 1, 0}},
	}, []uint32{0, 1, 2, 1, 3, 2})
}

func pixelSpace(w, h int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(w), 0, float32(h), 0.1, 100)
}

func rect(x, y, w, h, z float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z).Mul4(mgl32.Scale3D(w, h, 1))
}

func TestIncompleteDevice(t *testing.T) {
	d := &softdevice.Device{Incomplete: true}
	_, err := d.NewIDTarget(10, 10)
	assert.ErrorIs(t, err, gpu.ErrIncompleteTarget)

	_, err = softdevice.New().NewIDTarget(0, 10)
	assert.ErrorIs(t, err, gpu.ErrIncompleteTarget)
}

func TestDrawFillsCoveredPixelsOnly(t *testing.T) {
	target, err := softdevice.New().NewIDTarget(20, 10)
	require.NoError(t, err)
	target.Clear()

	proj := pixelSpace(20, 10)
	target.DrawID(quad(), proj.Mul4(rect(2, 3, 4, 2, -1)), 9)

	assert.Equal(t, uint32(9), target.ReadPixel(2, 3))
	assert.Equal(t, uint32(9), target.ReadPixel(5, 4))
	assert.Equal(t, uint32(0), target.ReadPixel(6, 4))
	assert.Equal(t, uint32(0), target.ReadPixel(2, 5))
	assert.Equal(t, uint32(0), target.ReadPixel(1, 3))
}

func TestNearestFragmentWins(t *testing.T) {
	target, err := softdevice.New().NewIDTarget(10, 10)
	require.NoError(t, err)
	target.Clear()
	proj := pixelSpace(10, 10)

	target.DrawID(quad(), proj.Mul4(rect(0, 0, 10, 10, -1)), 1)
	target.DrawID(quad(), proj.Mul4(rect(0, 0, 10, 10, -2)), 2)
	assert.Equal(t, uint32(1), target.ReadPixel(5, 5))

	target.DrawID(quad(), proj.Mul4(rect(0, 0, 10, 10, -0.5)), 3)
	assert.Equal(t, uint32(3), target.ReadPixel(5, 5))
}

func TestClearResetsColorAndDepth(t *testing.T) {
	target, err := softdevice.New().NewIDTarget(4, 4)
	require.NoError(t, err)
	proj := pixelSpace(4, 4)

	target.Clear()
	target.DrawID(quad(), proj.Mul4(rect(0, 0, 4, 4, -1)), 5)
	target.Clear()
	assert.Equal(t, uint32(0), target.ReadPixel(1, 1))

	target.DrawID(quad(), proj.Mul4(rect(0, 0, 4, 4, -50)), 6)
	assert.Equal(t, uint32(6), target.ReadPixel(1, 1))
}

func TestBehindEyeIsDropped(t *testing.T) {
	target, err := softdevice.New().NewIDTarget(8, 8)
	require.NoError(t, err)
	target.Clear()

	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	target.DrawID(quad(), proj.Mul4(rect(-1, -1, 2, 2, 5)), 4)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, uint32(0), target.ReadPixel(x, y))
		}
	}
}

func TestReadOutOfRangeAndRelease(t *testing.T) {
	target, err := softdevice.New().NewIDTarget(4, 4)
	require.NoError(t, err)
	target.Clear()
	target.DrawID(quad(), pixelSpace(4, 4).Mul4(rect(0, 0, 4, 4, -1)), 2)

	assert.Equal(t, uint32(0), target.ReadPixel(-1, 0))
	assert.Equal(t, uint32(0), target.ReadPixel(0, 4))
	assert.Equal(t, uint32(0), target.ReadPixel(4, 0))

	target.Release()
	assert.Equal(t, uint32(0), target.ReadPixel(1, 1))
	assert.Equal(t, 1, target.(*softdevice.Target).Releases)
}
