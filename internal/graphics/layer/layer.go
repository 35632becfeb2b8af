// Package layer orders the main-pass renderables.
package layer

import (
	"cmp"
	"slices"
)

// Layer groups renderables by how they interact with the depth buffer.
type Layer int

const (
	// Opaque geometry is depth tested and written, drawn in the given order.
	Opaque Layer = iota
	// Sky sits at the far plane and fills whatever opaque geometry left
	// uncovered.
	Sky
	// Overlay draws without the depth test and must come after every layer
	// that writes color, or the background passes paint over it.
	Overlay
)

func (l Layer) String() string {
	switch l {
	case Opaque:
		return "opaque"
	case Sky:
		return "sky"
	case Overlay:
		return "overlay"
	}
	return "unknown"
}

// Sort orders items by layer in place. Items of the same layer keep their
// relative order.
func Sort[T any](items []T, of func(T) Layer) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(of(a), of(b))
	})
}
