package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/internal/core/ports"
)

// NodeID identifies the logger in the component graph. Every other node
// resolves it, so it is cached and built exactly once.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
