package assets

import (
	"fmt"
	"log/slog"
	"sync"
)

// Pool owns every mesh in the scene. Objects hold references into the pool;
// the pool outlives them.
type Pool struct {
	mu     sync.RWMutex
	meshes map[string]*Mesh
}

// NewPool creates a pool seeded with the built-in meshes.
func NewPool() *Pool {
	p := &Pool{meshes: make(map[string]*Mesh)}
	p.Put(Cube())
	p.Put(Ground(1))
	p.Put(Skybox())
	return p
}

// Put stores m under its name, replacing any previous mesh of that name.
func (p *Pool) Put(m *Mesh) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.meshes[m.Name] = m
}

// Get returns the mesh registered under name.
func (p *Pool) Get(name string) (*Mesh, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	m, ok := p.meshes[name]
	return m, ok
}

// MustGet is Get for the built-in meshes, which are always present.
func (p *Pool) MustGet(name string) *Mesh {
	m, ok := p.Get(name)
	if !ok {
		panic(fmt.Sprintf("assets: mesh %q not in pool", name))
	}
	return m
}

// Model returns the mesh loaded from a glTF file, loading it on first use.
// The file path doubles as the pool key.
func (p *Pool) Model(path string) (*Mesh, error) {
	if m, ok := p.Get(path); ok {
		return m, nil
	}
	m, err := LoadGLTF(path)
	if err != nil {
		return nil, err
	}
	p.Put(m)
	slog.Debug("model loaded", "path", path, "vertices", len(m.Vertices), "indices", len(m.Indices))
	return m, nil
}

// Each calls fn for every mesh in the pool.
func (p *Pool) Each(fn func(*Mesh)) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, m := range p.meshes {
		fn(m)
	}
}
