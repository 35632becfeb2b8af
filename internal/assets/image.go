package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// CubemapFaces lists skybox face files in GL_TEXTURE_CUBE_MAP_POSITIVE_X order.
var CubemapFaces = [6]string{"right", "left", "top", "bottom", "front", "back"}

// DecodeRGBA decodes any registered image format into tightly packed RGBA.
// With flipY the rows are reversed so that row 0 is the bottom of the image,
// which is what texture uploads expect.
func DecodeRGBA(r io.Reader, flipY bool) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if flipY {
		flipRows(rgba)
	}
	return rgba, nil
}

// LoadRGBA opens and decodes an image file.
func LoadRGBA(path string, flipY bool) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, err := DecodeRGBA(f, flipY)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return img, nil
}

// LoadCubemap loads the six skybox faces from dir. Each face may use any
// supported extension; the first match wins. All faces are scaled to the size
// of the first one.
func LoadCubemap(dir string) ([6]*image.RGBA, error) {
	var faces [6]*image.RGBA
	for i, name := range CubemapFaces {
		matches, err := filepath.Glob(filepath.Join(dir, name+".*"))
		if err != nil {
			return faces, err
		}
		if len(matches) == 0 {
			return faces, fmt.Errorf("cubemap %s: missing face %q", dir, name)
		}
		img, err := LoadRGBA(matches[0], false)
		if err != nil {
			return faces, err
		}
		if i > 0 && img.Bounds() != faces[0].Bounds() {
			scaled := image.NewRGBA(faces[0].Bounds())
			draw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
			img = scaled
		}
		faces[i] = img
	}
	return faces, nil
}

// Solid returns a 1x1 image of the given color, used when a texture file is
// missing.
func Solid(r, g, b, a uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, []uint8{r, g, b, a})
	return img
}

func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	stride := img.Stride
	tmp := make([]uint8, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
