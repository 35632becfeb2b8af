package gpu

import "log/slog"

// UniformLocations caches uniform locations for one shader program. A name
// the program does not declare resolves to -1; it is reported once and the
// caller skips the write.
type UniformLocations struct {
	program string
	lookup  func(name string) int32
	cache   map[string]int32
}

// NewUniformLocations wraps a location lookup for the named program.
func NewUniformLocations(program string, lookup func(name string) int32) *UniformLocations {
	return &UniformLocations{
		program: program,
		lookup:  lookup,
		cache:   make(map[string]int32),
	}
}

// Location returns the cached location for name and whether it exists.
func (u *UniformLocations) Location(name string) (int32, bool) {
	loc, ok := u.cache[name]
	if !ok {
		loc = u.lookup(name)
		u.cache[name] = loc
		if loc < 0 {
			slog.Warn("uniform not found, writes skipped", "program", u.program, "uniform", name)
		}
	}
	return loc, loc >= 0
}

// Reset forgets every cached location, used after the program is relinked.
func (u *UniformLocations) Reset(lookup func(name string) int32) {
	u.lookup = lookup
	clear(u.cache)
}
