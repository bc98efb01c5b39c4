package taskfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/internal/adapters/logger"
	"go.trai.ch/taskmap/internal/core/ports"
)

// NodeID is the unique identifier for the graph loader Graft node.
const NodeID graft.ID = "adapter.graph_loader"

func init() {
	graft.Register(graft.Node[ports.GraphLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.GraphLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(NewOSFS(), log), nil
		},
	})
}
