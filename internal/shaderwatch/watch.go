// Package shaderwatch reports edits to GLSL sources so the frame loop can
// recompile them on the GL thread.
package shaderwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Extensions lists the file suffixes treated as shader sources.
var Extensions = []string{".vert", ".frag"}

// Watcher forwards the base name of every written or created shader file.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// New watches dir. Changes are delivered on Changes; when the consumer falls
// behind, repeats of a name already queued are dropped.
func New(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		fs:      fw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	slog.Debug("watching shaders", "dir", dir)
	return w, nil
}

// Changes yields shader file names, e.g. "object.frag".
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Drain returns every change queued so far without blocking, deduplicated
// and in arrival order.
func (w *Watcher) Drain() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case n := <-w.changes:
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		default:
			return names
		}
	}
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(ev.Name)
			if !IsShader(name) {
				continue
			}
			select {
			case w.changes <- name:
			default:
				slog.Debug("shader change dropped, queue full", "file", name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher error", "err", err)
		}
	}
}

// IsShader reports whether name has a shader extension.
func IsShader(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}
