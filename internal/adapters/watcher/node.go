package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/internal/core/ports"
)

const (
	// WatcherNodeID identifies the file watcher in the component graph.
	WatcherNodeID graft.ID = "adapter.watcher"
	// DigestCacheNodeID identifies the source digest cache in the component graph.
	DigestCacheNodeID graft.ID = "adapter.digest_cache"
)

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})

	graft.Register(graft.Node[*DigestCache]{
		ID:        DigestCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*DigestCache, error) {
			return NewDigestCache(), nil
		},
	})
}
