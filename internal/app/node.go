package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/internal/adapters/browser"  //nolint:depguard // Wired in app layer
	"go.trai.ch/taskmap/internal/adapters/dot"      //nolint:depguard // Wired in app layer
	"go.trai.ch/taskmap/internal/adapters/graphviz" //nolint:depguard // Wired in app layer
	"go.trai.ch/taskmap/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/taskmap/internal/adapters/taskfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/taskmap/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/taskmap/internal/core/ports"
	"go.trai.ch/taskmap/internal/engine/cycles"
)

const (
	// AppNodeID identifies the pipeline orchestrator in the component graph.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID identifies the bundle handed to the CLI layer.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the fully wired pieces the CLI layer needs: the
// pipeline itself and the logger for reporting command failures.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			taskfile.NodeID,
			cycles.NodeID,
			dot.NodeID,
			graphviz.NodeID,
			browser.NodeID,
			watcher.WatcherNodeID,
			watcher.DigestCacheNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.GraphLoader](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[*cycles.Detector](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	layout, err := graft.Dep[ports.LayoutEngine](ctx)
	if err != nil {
		return nil, err
	}

	viewer, err := graft.Dep[ports.Viewer](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	digests, err := graft.Dep[*watcher.DigestCache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, detector, renderer, layout, viewer, fileWatcher, digests, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
