package scene

import (
	"fmt"

	"playgroundgl/internal/assets"

	"github.com/go-gl/mathgl/mgl32"
)

// Spec describes one object in the config file.
type Spec struct {
	Name     string     `toml:"name"`
	Kind     string     `toml:"kind"`
	Position [3]float32 `toml:"position"`
	Angle    float32    `toml:"angle"`
	Scale    float32    `toml:"scale"`
	Color    [3]float32 `toml:"color"`
	Model    string     `toml:"model"`
}

// DefaultSpecs is the demo scene: ten tumbling boxes and two orbiting lights.
func DefaultSpecs() []Spec {
	positions := [][3]float32{
		{0.0, 0.0, 0.0},
		{2.0, 5.0, -15.0},
		{-1.5, -2.2, -2.5},
		{-3.8, -2.0, -12.3},
		{2.4, -0.4, -3.5},
		{-1.7, 3.0, -7.5},
		{1.3, -2.0, -2.5},
		{1.5, 2.0, -2.5},
		{1.5, 0.2, -1.5},
		{-1.3, 1.0, -1.5},
	}
	specs := make([]Spec, 0, len(positions)+2)
	for i, p := range positions {
		specs = append(specs, Spec{
			Name:     fmt.Sprintf("box-%d", i),
			Kind:     "box",
			Position: p,
			Angle:    float32(i),
		})
	}
	specs = append(specs,
		Spec{Name: "light-white", Kind: "light", Position: [3]float32{1.2, 1.0, 2.0}, Color: [3]float32{1, 1, 1}},
		Spec{Name: "light-amber", Kind: "light", Position: [3]float32{-2.0, 1.5, -4.0}, Color: [3]float32{1, 0.6, 0.2}},
	)
	return specs
}

// FitScale returns the uniform scale that makes the largest extent of m's
// bounding box one unit, the size of a box. Degenerate meshes get 1.
func FitScale(m *assets.Mesh) float32 {
	lo, hi := m.Bounds()
	size := hi.Sub(lo)
	extent := max(size.X(), size.Y(), size.Z())
	if extent <= 0 {
		return 1
	}
	return 1 / extent
}

// Populate builds a registry from specs, in order, resolving meshes from
// pool. Model files are loaded on first reference.
func Populate(pool *assets.Pool, specs []Spec) (*Registry, error) {
	reg := NewRegistry()
	cube := pool.MustGet(assets.MeshCube)
	for i, s := range specs {
		kind, err := ParseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", kind, i)
		}
		pos := mgl32.Vec3(s.Position)

		var o *Object
		switch kind {
		case KindBox:
			o = NewBox(name, cube, pos, s.Angle)
		case KindLight:
			o = NewLight(name, cube, pos, mgl32.Vec3(s.Color))
		case KindModel:
			if s.Model == "" {
				return nil, fmt.Errorf("object %d (%s): model path required", i, name)
			}
			mesh, err := pool.Model(s.Model)
			if err != nil {
				return nil, fmt.Errorf("object %d (%s): %w", i, name, err)
			}
			scale := s.Scale
			if scale == 0 {
				scale = FitScale(mesh)
			}
			o = NewModel(name, mesh, pos, scale)
		}
		reg.Add(o)
	}
	return reg, nil
}
