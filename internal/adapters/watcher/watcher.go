package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/taskmap/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// opMapping pairs each fsnotify flag with its ports operation. Order
// matters: a combined event reports its most significant flag.
var opMapping = []struct {
	mask fsnotify.Op
	op   ports.WatchOp
}{
	{fsnotify.Write, ports.OpWrite},
	{fsnotify.Create, ports.OpCreate},
	{fsnotify.Remove, ports.OpRemove},
	{fsnotify.Rename, ports.OpRename},
}

// Watcher implements taskfile watching using fsnotify. Files are watched
// through their parent directories so editors that save by atomic rename
// are still observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent

	mu   sync.Mutex
	dirs map[string]bool
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		dirs:      make(map[string]bool),
	}, nil
}

// Start begins watching the parent directories of the given files and
// forwards events until ctx is canceled.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	if err := w.Update(paths); err != nil {
		return err
	}

	go w.forward(ctx)

	return nil
}

// Update replaces the watched file set. Parent directories still in use are
// kept, new ones are added and stale ones are removed.
func (w *Watcher) Update(paths []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	needed := parentDirs(paths)

	for dir := range needed {
		if w.dirs[dir] {
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}

	for dir := range w.dirs {
		if needed[dir] {
			continue
		}
		_ = w.fsWatcher.Remove(dir)
		delete(w.dirs, dir)
	}

	return nil
}

// Stop closes the underlying watcher; the event stream ends with it.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events yields forwarded events until the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// parentDirs returns the set of parent directories of the given files.
func parentDirs(paths []string) map[string]bool {
	dirs := make(map[string]bool, len(paths))
	for _, path := range paths {
		dirs[filepath.Dir(path)] = true
	}
	return dirs
}

// forward pumps fsnotify events into the events channel until ctx is
// canceled or the underlying watcher closes.
func (w *Watcher) forward(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			converted, relevant := convertEvent(event)
			if !relevant {
				continue
			}

			select {
			case w.events <- converted:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// convertEvent maps an fsnotify event onto a ports.WatchEvent. Events
// carrying none of the mapped flags, such as bare chmods, are dropped.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	for _, m := range opMapping {
		if event.Op.Has(m.mask) {
			return ports.WatchEvent{Path: event.Name, Operation: m.op}, true
		}
	}
	return ports.WatchEvent{}, false
}
