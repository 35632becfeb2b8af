package scene

import (
	"fmt"
	"math"

	"playgroundgl/internal/assets"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags the drawable variant of an Object.
type Kind int

const (
	KindBox Kind = iota
	KindLight
	KindModel
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindLight:
		return "light"
	case KindModel:
		return "model"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a config name onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "box", "":
		return KindBox, nil
	case "light":
		return KindLight, nil
	case "model":
		return KindModel, nil
	}
	return 0, fmt.Errorf("unknown object kind %q", s)
}

const (
	// LightScale shrinks the cube used to mark a point light.
	LightScale = 0.05
	// LightSpin is the orbit speed of lights around the Z axis, rad/s.
	LightSpin = 0.5
)

var boxAxis = mgl32.Vec3{1, 2, 0}.Normalize()

// Object is one placed drawable. Index is assigned by the Registry and never
// changes; Model is the world transform and may change every frame.
type Object struct {
	Index int
	Name  string
	Kind  Kind
	Mesh  *assets.Mesh
	Model mgl32.Mat4
	Color mgl32.Vec3
}

// NewBox places a cube at position, pre-rotated by angle steps of -pi/3
// about the (1,2,0) axis.
func NewBox(name string, mesh *assets.Mesh, position mgl32.Vec3, angle float32) *Object {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3D(angle*-math.Pi/3, boxAxis))
	return &Object{Name: name, Kind: KindBox, Mesh: mesh, Model: model, Color: mgl32.Vec3{1, 1, 1}}
}

// NewLight places a small emissive cube that orbits the origin.
func NewLight(name string, mesh *assets.Mesh, position, color mgl32.Vec3) *Object {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Scale3D(LightScale, LightScale, LightScale))
	return &Object{Name: name, Kind: KindLight, Mesh: mesh, Model: model, Color: color}
}

// NewModel places a loaded mesh with a uniform scale. Models do not animate.
func NewModel(name string, mesh *assets.Mesh, position mgl32.Vec3, scale float32) *Object {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Scale3D(scale, scale, scale))
	return &Object{Name: name, Kind: KindModel, Mesh: mesh, Model: model, Color: mgl32.Vec3{1, 1, 1}}
}

// Update advances the per-kind animation by dt seconds. Boxes spin in place
// at rotSpeed; lights orbit the Z axis.
func (o *Object) Update(dt, rotSpeed float32) {
	switch o.Kind {
	case KindBox:
		angle := dt * rotSpeed * -math.Pi / 3
		o.Model = o.Model.Mul4(mgl32.HomogRotate3D(angle, boxAxis))
	case KindLight:
		o.Model = mgl32.HomogRotate3D(dt*LightSpin, mgl32.Vec3{0, 0, 1}).Mul4(o.Model)
	}
}

// Position returns the world-space origin of the object.
func (o *Object) Position() mgl32.Vec3 {
	return o.Model.Col(3).Vec3()
}
