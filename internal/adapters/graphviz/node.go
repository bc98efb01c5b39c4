package graphviz

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/internal/adapters/logger"
	"go.trai.ch/taskmap/internal/core/ports"
)

// NodeID is the unique identifier for the layout engine Graft node.
const NodeID graft.ID = "adapter.layout_engine"

func init() {
	graft.Register(graft.Node[ports.LayoutEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LayoutEngine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(log), nil
		},
	})
}
