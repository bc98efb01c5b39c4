package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskmap/internal/adapters/watcher"
	"go.trai.ch/taskmap/internal/core/ports"
)

func TestWatcher_Update_TracksParentDirs(t *testing.T) {
	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	root := t.TempDir()
	sub := filepath.Join(root, "includes")
	require.NoError(t, os.Mkdir(sub, 0o750))

	require.NoError(t, w.Update([]string{
		filepath.Join(root, "Taskfile.yaml"),
		filepath.Join(sub, "ci.yaml"),
		filepath.Join(sub, "deploy.yaml"),
	}))
	assert.ElementsMatch(t, []string{root, sub}, w.WatchedDirs())

	// Shrinking the source set drops the now unused directory.
	require.NoError(t, w.Update([]string{filepath.Join(root, "Taskfile.yaml")}))
	assert.ElementsMatch(t, []string{root}, w.WatchedDirs())
}

func TestWatcher_ReceivesWriteEvent(t *testing.T) {
	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	dir := t.TempDir()
	path := writeSource(t, dir, "Taskfile.yaml", "tasks:\n  build: {}\n")

	require.NoError(t, w.Start(t.Context(), []string{path}))

	received := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			if filepath.Clean(event.Path) == path {
				received <- event
				return
			}
		}
	}()

	writeSource(t, dir, "Taskfile.yaml", "tasks:\n  build: {}\n  test: {}\n")

	select {
	case event := <-received:
		assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, event.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for write event")
	}
}
