// Package camera is a free-flying first-person camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxPitch keeps the view direction off the world up axis.
	MaxPitch = (math32.Pi - 0.001) / 2
	MinZoom  = 0.2
	MaxZoom  = 1.0
	Near     = 0.1
	Far      = 100.0
	// FloorY is the lowest height the camera can move to.
	FloorY = -0.8

	zoomStep = 0.05
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Movement is a set of held movement directions.
type Movement struct {
	Forward, Back, Left, Right bool
}

// axes maps held keys to -1, 0 or +1 per axis.
func (m Movement) axes() (x, y float32) {
	if m.Forward {
		y++
	}
	if m.Back {
		y--
	}
	if m.Right {
		x++
	}
	if m.Left {
		x--
	}
	return x, y
}

// Camera holds position and orientation. Yaw and Pitch are radians; a yaw of
// zero looks down +X.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Zoom        float32
	Speed       float32
	Sensitivity float32

	lastX, lastY float64
	firstMouse   bool
}

func New(position mgl32.Vec3, yaw, pitch, speed, sensitivity float32) *Camera {
	c := &Camera{
		Position:    position,
		Yaw:         yaw,
		Speed:       speed,
		Sensitivity: sensitivity,
		Zoom:        MaxZoom,
		firstMouse:  true,
	}
	c.setPitch(pitch)
	return c
}

// ResetMouse makes the next HandleMouse call only record its position, so
// the jump since the last sample is never applied as rotation.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// HandleMouse turns the camera by the cursor movement since the last call.
func (c *Camera) HandleMouse(x, y float64) {
	if c.firstMouse {
		c.lastX, c.lastY = x, y
		c.firstMouse = false
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(c.lastY - y)
	c.lastX, c.lastY = x, y

	c.Yaw += dx * c.Sensitivity
	c.setPitch(c.Pitch + dy*c.Sensitivity)
}

func (c *Camera) setPitch(p float32) {
	c.Pitch = mgl32.Clamp(p, -MaxPitch, MaxPitch)
}

// Scroll zooms in for positive offsets.
func (c *Camera) Scroll(dy float64) {
	c.Zoom = mgl32.Clamp(c.Zoom-float32(dy)*zoomStep, MinZoom, MaxZoom)
}

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	cp := math32.Cos(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(c.Yaw) * cp,
		math32.Sin(c.Pitch),
		math32.Sin(c.Yaw) * cp,
	}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

// Move advances along the view direction and its right vector at Speed
// units per second, never dropping below FloorY.
func (c *Camera) Move(m Movement, dt float32) {
	x, y := m.axes()
	step := c.Speed * dt
	c.Position = c.Position.
		Add(c.Front().Mul(step * y)).
		Add(c.Right().Mul(step * x))
	if c.Position[1] < FloorY {
		c.Position[1] = FloorY
	}
}

// FOV is the vertical field of view in radians.
func (c *Camera) FOV() float32 {
	return c.Zoom * math32.Pi / 4
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV(), aspect, Near, Far)
}
