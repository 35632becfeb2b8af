// Package lighting computes the light uniforms of the object shader.
package lighting

import (
	"fmt"

	"playgroundgl/internal/scene"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights matches the point_lights array length in object.frag.
const MaxPointLights = 4

// Uniforms is the subset of a shader program the lights write to.
type Uniforms interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVector3(name string, x, y, z float32)
}

func setVec3(u Uniforms, name string, v mgl32.Vec3) {
	u.SetVector3(name, v.X(), v.Y(), v.Z())
}

var white = mgl32.Vec3{1, 1, 1}

// Sun is a directional light.
type Sun struct {
	Direction mgl32.Vec3
	On        bool
}

const (
	sunDiffuse  = 0.9
	sunSpecular = 0.5
	sunStrength = 1.0
)

// Apply writes the sun with its direction rotated into view space.
func (s Sun) Apply(u Uniforms, view mgl32.Mat4) {
	dir := view.Mul4x1(s.Direction.Vec4(0)).Vec3()
	u.SetFloat("sun.diffuse_intensity", sunDiffuse)
	u.SetFloat("sun.specular_intensity", sunSpecular)
	setVec3(u, "sun.direction", dir)
	u.SetBool("sun.is_on", s.On)
	setVec3(u, "sun.color", white)
	u.SetFloat("sun.strength", sunStrength)
}

// Flashlight is a cone light attached to the camera. Pitch and Yaw are
// offsets from the view direction, in radians, clamped to the bounds.
type Flashlight struct {
	MinPitch, MaxPitch float32
	MinYaw, MaxYaw     float32
	On                 bool
}

const flashlightStrength = 0.9

// Direction returns the view-space beam direction for the given steering
// angles after clamping. A zero offset points straight ahead (-Z).
func (f Flashlight) Direction(pitch, yaw float32) mgl32.Vec3 {
	pitch = mgl32.Clamp(pitch, f.MinPitch, f.MaxPitch)
	yaw = mgl32.Clamp(yaw, f.MinYaw, f.MaxYaw)
	cp := math32.Cos(pitch)
	return mgl32.Vec3{
		math32.Sin(yaw) * cp,
		math32.Sin(pitch),
		-math32.Cos(yaw) * cp,
	}
}

// Clamp limits steering angles to the flashlight bounds so held arrow keys
// do not accumulate past them.
func (f Flashlight) Clamp(pitch, yaw float32) (float32, float32) {
	return mgl32.Clamp(pitch, f.MinPitch, f.MaxPitch), mgl32.Clamp(yaw, f.MinYaw, f.MaxYaw)
}

func (f Flashlight) Apply(u Uniforms, pitch, yaw float32) {
	setVec3(u, "flashlight.direction", f.Direction(pitch, yaw))
	u.SetBool("flashlight.is_on", f.On)
	setVec3(u, "flashlight.color", white)
	u.SetFloat("flashlight.strength", flashlightStrength)
}

// ApplyPointLights writes the view-space position and color of each light
// object, up to MaxPointLights. It returns how many were written.
func ApplyPointLights(u Uniforms, view mgl32.Mat4, lights []*scene.Object) int {
	n := min(len(lights), MaxPointLights)
	for i, l := range lights[:n] {
		pos := view.Mul4x1(l.Position().Vec4(1)).Vec3()
		setVec3(u, fmt.Sprintf("point_lights[%d].position", i), pos)
		setVec3(u, fmt.Sprintf("point_lights[%d].color", i), l.Color)
	}
	u.SetInt("num_point_lights", int32(n))
	return n
}
