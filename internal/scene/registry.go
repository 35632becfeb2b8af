// Package scene holds the ordered list of drawable objects. An object's index
// in the registry is its identity for picking and selection.
package scene

// Registry is the ordered set of scene objects.
type Registry struct {
	objects []*Object
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends o, assigns its index and returns it.
func (r *Registry) Add(o *Object) int {
	o.Index = len(r.objects)
	r.objects = append(r.objects, o)
	return o.Index
}

// Len returns the number of objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// At returns the object at index i, or nil when i is out of range.
func (r *Registry) At(i int) *Object {
	if i < 0 || i >= len(r.objects) {
		return nil
	}
	return r.objects[i]
}

// Objects returns the objects in index order. The slice must not be modified.
func (r *Registry) Objects() []*Object {
	return r.objects
}

// Update animates every object.
func (r *Registry) Update(dt, rotSpeed float32) {
	for _, o := range r.objects {
		o.Update(dt, rotSpeed)
	}
}

// Lights returns the light objects in index order.
func (r *Registry) Lights() []*Object {
	var out []*Object
	for _, o := range r.objects {
		if o.Kind == KindLight {
			out = append(out, o)
		}
	}
	return out
}
