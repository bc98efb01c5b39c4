package ports

import "go.trai.ch/taskmap/internal/core/domain"

// Renderer serializes a dependency graph into a textual graph description
// for the layout engine.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render produces the graph description for the given graph. Nodes and
	// edges whose endpoints are in cyclic are styled as cycle members.
	// Output is deterministic for a given graph and cycle set.
	Render(g *domain.Graph, cyclic domain.NodeSet) []byte
}
