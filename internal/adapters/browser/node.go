package browser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/internal/adapters/logger"
	"go.trai.ch/taskmap/internal/core/ports"
)

// NodeID is the unique identifier for the viewer Graft node.
const NodeID graft.ID = "adapter.viewer"

func init() {
	graft.Register(graft.Node[ports.Viewer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Viewer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBrowser(log), nil
		},
	})
}
