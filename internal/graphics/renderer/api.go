package renderer

import (
	"playgroundgl/internal/app"
	"playgroundgl/internal/camera"
	"playgroundgl/internal/graphics"
	"playgroundgl/internal/graphics/layer"
	"playgroundgl/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera   *camera.Camera
	Registry *scene.Registry
	State    *app.State
	DT       float64
	View     mgl32.Mat4
	Proj     mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// ShaderOwner is implemented by renderables whose programs can be rebuilt
// when their sources change.
type ShaderOwner interface {
	Shaders() []*graphics.Shader
}

// Layered is implemented by renderables that do not belong to the opaque
// layer.
type Layered interface {
	Layer() layer.Layer
}

// LayerOf returns the layer r draws in.
func LayerOf(r Renderable) layer.Layer {
	if l, ok := r.(Layered); ok {
		return l.Layer()
	}
	return layer.Opaque
}
