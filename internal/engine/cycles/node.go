package cycles

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/internal/adapters/logger"
	"go.trai.ch/taskmap/internal/core/ports"
)

// NodeID is the unique identifier for the cycle detector Graft node.
const NodeID graft.ID = "engine.cycles"

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Detector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(log), nil
		},
	})
}
