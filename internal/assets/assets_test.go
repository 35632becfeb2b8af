package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"playgroundgl/internal/assets"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeGeometry(t *testing.T) {
	cube := assets.Cube()
	assert.Len(t, cube.Vertices, 24)
	assert.Len(t, cube.Indices, 36)

	min, max := cube.Bounds()
	assert.Equal(t, mgl32.Vec3{-.5, -.5, -.5}, min)
	assert.Equal(t, mgl32.Vec3{.5, .5, .5}, max)

	for _, idx := range cube.Indices {
		assert.Less(t, int(idx), len(cube.Vertices))
	}
	assert.Len(t, cube.Interleaved(), 24*8)
}

func TestGroundTiling(t *testing.T) {
	g := assets.Ground(4)
	require.Len(t, g.Vertices, 4)
	assert.Equal(t, mgl32.Vec2{4, 4}, g.Vertices[3].UV)
	assert.Equal(t, []uint32{0, 1, 2, 1, 2, 3}, g.Indices)
}

func TestPoolBuiltins(t *testing.T) {
	p := assets.NewPool()
	for _, name := range []string{assets.MeshCube, assets.MeshGround, assets.MeshSkybox} {
		m, ok := p.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, m.Name)
	}
	_, ok := p.Get("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { p.MustGet("missing") })
}

func TestDecodeRGBAFlip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(0, 1, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := assets.DecodeRGBA(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))

	flipped, err := assets.DecodeRGBA(bytes.NewReader(buf.Bytes()), true)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, flipped.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, flipped.RGBAAt(0, 1))
}

func TestDecodeRGBAGarbage(t *testing.T) {
	_, err := assets.DecodeRGBA(bytes.NewReader([]byte("not an image")), false)
	assert.Error(t, err)
}

func TestLoadCubemapMissingFace(t *testing.T) {
	_, err := assets.LoadCubemap(t.TempDir())
	assert.ErrorContains(t, err, "right")
}

func TestLoadCubemapScalesFaces(t *testing.T) {
	dir := t.TempDir()
	for i, name := range assets.CubemapFaces {
		size := 4
		if i > 0 {
			size = 2
		}
		writePNG(t, filepath.Join(dir, name+".png"), size)
	}
	faces, err := assets.LoadCubemap(dir)
	require.NoError(t, err)
	for _, f := range faces {
		assert.Equal(t, image.Rect(0, 0, 4, 4), f.Bounds())
	}
}

func TestPoolModelFromGLB(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}
	path := filepath.Join(t.TempDir(), "tri.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))

	p := assets.NewPool()
	m, err := p.Model(path)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Vertices[1].Position)

	again, err := p.Model(path)
	require.NoError(t, err)
	assert.Same(t, m, again)
}

func TestLoadGLTFRejectsIndexPastVertices(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{7, 1, 2})
	doc.Meshes = []*gltf.Mesh{{
		Name: "broken",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	}}
	path := filepath.Join(t.TempDir(), "broken.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))

	m, err := assets.LoadGLTF(path)
	assert.Nil(t, m)
	assert.ErrorContains(t, err, "out of range")

	_, err = assets.NewPool().Model(path)
	assert.Error(t, err)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := assets.LoadGLTF(filepath.Join(t.TempDir(), "nope.glb"))
	assert.Error(t, err)
}

func writePNG(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}
