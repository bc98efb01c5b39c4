// Package app implements the application layer for taskmap.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/taskmap/internal/adapters/telemetry"
	"go.trai.ch/taskmap/internal/adapters/watcher"
	"go.trai.ch/taskmap/internal/core/domain"
	"go.trai.ch/taskmap/internal/core/ports"
	"go.trai.ch/taskmap/internal/engine/cycles"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.GraphLoader
	detector *cycles.Detector
	renderer ports.Renderer
	layout   ports.LayoutEngine
	viewer   ports.Viewer
	watcher  ports.Watcher
	digests  *watcher.DigestCache
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.GraphLoader,
	detector *cycles.Detector,
	renderer ports.Renderer,
	layout ports.LayoutEngine,
	viewer ports.Viewer,
	fileWatcher ports.Watcher,
	digests *watcher.DigestCache,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		detector: detector,
		renderer: renderer,
		layout:   layout,
		viewer:   viewer,
		watcher:  fileWatcher,
		digests:  digests,
		logger:   log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Silent skips opening the rendered image in the browser.
	Silent bool
	// Watch keeps the process alive and re-runs the pipeline when a
	// taskfile changes.
	Watch bool
}

// Run executes the graph pipeline: load the taskfiles, detect cycles, render
// the graph description, lay it out and write the image. Unless Silent, the
// image is opened in the browser. With Watch, the pipeline re-runs whenever a
// source taskfile changes on disk.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Initialize Telemetry
	// Create a bridge that reports span timings through the logger.
	bridge := telemetry.NewBridge(a.logger)

	// Configure the global OTel SDK to use our bridge for spans.
	// This ensures the tracer picks up a provider that forwards every
	// finished span to our bridge.
	setupOTel(bridge)

	tracer := telemetry.NewTracer("taskmap")

	// 2. First build
	sources, err := a.build(ctx, tracer, !opts.Silent)
	if !opts.Watch {
		return err
	}

	// 3. Watch mode: failures are logged, the loop continues.
	if err != nil {
		a.logger.Error(err)
	}
	opened := err == nil && !opts.Silent
	return a.watch(ctx, tracer, sources, opts, opened)
}

// build runs one pipeline pass. It returns the taskfile paths that were read,
// which are known as soon as loading succeeds, even when a later stage fails.
//
//nolint:cyclop // orchestration function
func (a *App) build(ctx context.Context, tracer ports.Tracer, openImage bool) ([]string, error) {
	ctx, buildSpan := tracer.Start(ctx, "build")
	defer buildSpan.End()

	// 1. Load the graph
	_, loadSpan := tracer.Start(ctx, "load")
	graph, err := a.loader.Load(domain.TaskfileName)
	if err != nil {
		loadSpan.RecordError(err)
		loadSpan.End()
		return nil, err
	}
	loadSpan.SetAttribute("tasks", graph.NodeCount())
	loadSpan.SetAttribute("dependencies", graph.EdgeCount())
	loadSpan.End()
	sources := graph.Sources()

	// 2. Detect dependency cycles
	_, detectSpan := tracer.Start(ctx, "detect")
	report := a.detector.Detect(graph)
	detectSpan.End()
	for _, group := range report.Groups {
		names := make([]string, len(group))
		for i, id := range group {
			names[i] = graph.Name(id)
		}
		sort.Strings(names)
		a.logger.Warn(fmt.Sprintf("dependency cycle: %s", strings.Join(names, ", ")))
	}

	// 3. Render the graph description
	_, renderSpan := tracer.Start(ctx, "render")
	desc := a.renderer.Render(graph, report.Members)
	renderSpan.End()

	// 4. Lay it out as an image
	layoutCtx, layoutSpan := tracer.Start(ctx, "layout")
	img, err := a.layout.Layout(layoutCtx, desc)
	if err != nil {
		layoutSpan.RecordError(err)
		layoutSpan.End()
		return sources, err
	}
	layoutSpan.SetAttribute("bytes", len(img))
	layoutSpan.End()

	// 5. Write the image next to the taskfile
	_, writeSpan := tracer.Start(ctx, "write")
	if err := os.WriteFile(domain.ImageName, img, domain.FilePerm); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrImageWrite.Error()), "path", domain.ImageName)
		writeSpan.RecordError(wrapped)
		writeSpan.End()
		return sources, wrapped
	}
	writeSpan.End()

	if !openImage {
		return sources, nil
	}

	// 6. Open it in the browser
	_, viewSpan := tracer.Start(ctx, "view")
	defer viewSpan.End()
	path, err := filepath.Abs(domain.ImageName)
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrImageWrite.Error())
		viewSpan.RecordError(wrapped)
		return sources, wrapped
	}
	if err := a.viewer.Open(path); err != nil {
		viewSpan.RecordError(err)
		return sources, err
	}

	return sources, nil
}

// watch re-runs the pipeline whenever the content of a source taskfile
// changes. Raw file system events are debounced into trigger signals; a
// trigger only causes a rebuild when some source digest actually changed, so
// editor noise such as touches and atomic-rename saves is ignored. Events
// arriving during a build coalesce into at most one pending rebuild.
func (a *App) watch(
	ctx context.Context,
	tracer ports.Tracer,
	sources []string,
	opts RunOptions,
	opened bool,
) error {
	triggers := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(_ []string) {
		select {
		case triggers <- struct{}{}:
		default:
		}
	})

	if err := a.watcher.Start(ctx, sources); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.digests.Prime(sources)
	a.logger.Info("watching for taskfile changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-triggers:
		}

		changed := a.digests.Changed(sources)
		if len(changed) == 0 {
			continue
		}
		names := make([]string, len(changed))
		for i, path := range changed {
			names[i] = filepath.Base(path)
		}
		a.logger.Info(fmt.Sprintf("%s changed, rebuilding", strings.Join(names, ", ")))

		next, err := a.build(ctx, tracer, !opts.Silent && !opened)
		if err != nil {
			a.logger.Error(err)
		} else if !opts.Silent {
			opened = true
		}

		// A failed load leaves the previous source set in place.
		if len(next) > 0 {
			sources = next
			if err := a.watcher.Update(sources); err != nil {
				a.logger.Error(err)
			}
		}
		a.digests.Prime(sources)
	}
}

// setupOTel configures the OpenTelemetry SDK with the logger bridge.
func setupOTel(bridge *telemetry.Bridge) {
	// Create a new TracerProvider with the bridge as a SpanProcessor.
	// This ensures that every completed span is reported to the logger.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)

	// Register it as the global provider.
	otel.SetTracerProvider(tp)
}
