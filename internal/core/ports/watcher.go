package ports

import (
	"context"
	"iter"
)

// WatchOp classifies a file system change.
type WatchOp uint8

const (
	// OpCreate marks a newly created file.
	OpCreate WatchOp = iota
	// OpWrite marks a modification to an existing file.
	OpWrite
	// OpRemove marks a deleted file.
	OpRemove
	// OpRename marks a file moved away, as atomic-save editors do.
	OpRename
)

// WatchEvent is one file system change reported by the watcher.
type WatchEvent struct {
	// Path names the changed file.
	Path string
	// Operation classifies the change.
	Operation WatchOp
}

// Watcher defines the interface for watching taskfile changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files. Watching happens at the level
	// of their parent directories so editors that replace files atomically
	// are still observed. It returns an error if the watcher fails to start.
	Start(ctx context.Context, paths []string) error
	// Update replaces the watched file set, keeping directories that are
	// still needed and dropping the rest.
	Update(paths []string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
