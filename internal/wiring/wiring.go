// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/taskmap/internal/adapters/browser"
	_ "go.trai.ch/taskmap/internal/adapters/dot"
	_ "go.trai.ch/taskmap/internal/adapters/graphviz"
	_ "go.trai.ch/taskmap/internal/adapters/logger"
	_ "go.trai.ch/taskmap/internal/adapters/taskfile"
	_ "go.trai.ch/taskmap/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/taskmap/internal/app"
	_ "go.trai.ch/taskmap/internal/engine/cycles"
)
