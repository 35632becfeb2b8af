package graphics

import (
	"fmt"
	"sync"

	"playgroundgl/internal/assets"
)

// TextureCache loads each image file at most once. Textures are flipped
// vertically on load so that UV (0,0) is the image's bottom-left corner.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]*Texture
}

func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*Texture)}
}

// Get returns the texture for path, uploading it on first use.
func (c *TextureCache) Get(path string) (*Texture, error) {
	c.mu.RLock()
	if tex, ok := c.textures[path]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}

	img, err := assets.LoadRGBA(path, true)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	tex := NewTexture2D(img)
	c.textures[path] = tex
	return tex, nil
}

// Delete releases every cached texture.
func (c *TextureCache) Delete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path, tex := range c.textures {
		tex.Delete()
		delete(c.textures, path)
	}
}
