// Package watcher implements file system watching for taskfile sources.
package watcher

import (
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is how long the file system must stay quiet before
// pending events are delivered as one batch.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer collects file system events and delivers the distinct paths in
// one callback once no new event has arrived for a full window.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer returns a debouncer invoking callback after each quiet window.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and pushes the window out. Paths are interned,
// so repeated events for the same file collapse into one entry.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.fire)
		return
	}
	d.timer.Reset(d.window)
}

// fire runs once the window has stayed quiet.
func (d *Debouncer) fire() {
	paths := d.drain()
	if len(paths) == 0 || d.callback == nil {
		return
	}

	// Deliver off the timer goroutine so a slow consumer never delays the
	// next window.
	go d.callback(paths)
}

// drain empties the pending set and disarms the timer.
func (d *Debouncer) drain() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.timer = nil
	if len(d.pending) == 0 {
		return nil
	}

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	clear(d.pending)

	return paths
}
