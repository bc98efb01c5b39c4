// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/taskmap/internal/core/domain"

// GraphLoader defines the interface for building the dependency graph
// from a root taskfile and everything it includes.
//
//go:generate mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	// Load reads the taskfile at the given path, follows its includes and
	// returns the resulting dependency graph.
	Load(path string) (*domain.Graph, error)
}
