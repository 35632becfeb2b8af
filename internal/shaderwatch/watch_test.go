package shaderwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsShader(t *testing.T) {
	assert.True(t, IsShader("object.vert"))
	assert.True(t, IsShader("id.frag"))
	assert.False(t, IsShader("notes.txt"))
	assert.False(t, IsShader("frag"))
}

func TestReportsShaderWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "object.frag"), []byte("void main(){}"), 0o644))

	select {
	case name := <-w.Changes():
		assert.Equal(t, "object.frag", name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestDrainDeduplicates(t *testing.T) {
	w := &Watcher{changes: make(chan string, 8)}
	w.changes <- "a.vert"
	w.changes <- "b.frag"
	w.changes <- "a.vert"
	assert.Equal(t, []string{"a.vert", "b.frag"}, w.Drain())
	assert.Empty(t, w.Drain())
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestCloseTwice(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
