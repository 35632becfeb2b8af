// Package selection tracks which scene objects are selected and whether the
// mouse currently steers the camera or picks objects.
package selection

import "sort"

// Set holds selected registry indices.
type Set struct {
	selected map[int]struct{}
}

// NewSet returns an empty selection; every object starts unselected.
func NewSet() *Set {
	return &Set{selected: make(map[int]struct{})}
}

// Toggle flips membership of index and reports whether it is now selected.
func (s *Set) Toggle(index int) bool {
	if _, ok := s.selected[index]; ok {
		delete(s.selected, index)
		return false
	}
	s.selected[index] = struct{}{}
	return true
}

// Contains reports whether index is selected.
func (s *Set) Contains(index int) bool {
	_, ok := s.selected[index]
	return ok
}

// Len returns the number of selected objects.
func (s *Set) Len() int {
	return len(s.selected)
}

// Indices returns the selected indices in ascending order.
func (s *Set) Indices() []int {
	out := make([]int, 0, len(s.selected))
	for i := range s.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// DrawOrder returns the indices 0..n-1 with every unselected index first and
// every selected index last, each group in registry order. The main pass
// draws in this order so selected objects and their outlines are grouped.
func (s *Set) DrawOrder(n int) []int {
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !s.Contains(i) {
			order = append(order, i)
		}
	}
	for i := 0; i < n; i++ {
		if s.Contains(i) {
			order = append(order, i)
		}
	}
	return order
}
