package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml")
}

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case name := <-w.Events:
		return name
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return ""
}

func TestWatcher_ReportsMatchingWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(isYAML, dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "controller.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dash:\n  speed: 200\n"), 0o644))

	assert.Equal(t, path, waitEvent(t, w))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(isYAML, dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "controller.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x: 1\n"), 0o644))

	assert.Equal(t, path, waitEvent(t, w), "the text file should have been skipped")
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(nil, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcher_CloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(nil, t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "second close is a no-op")

	_, ok := <-w.Events
	assert.False(t, ok)
	assert.Empty(t, w.Drain())
}

func TestWatcher_Drain(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(nil, dir)
	require.NoError(t, err)
	defer w.Close()

	assert.Empty(t, w.Drain(), "nothing written yet")

	path := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	var names []string
	require.Eventually(t, func() bool {
		names = append(names, w.Drain()...)
		return len(names) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, path, names[0])
}
