// Package main is the entry point for the taskmap graph tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskmap/cmd/taskmap/commands"
	"go.trai.ch/taskmap/internal/app"
	_ "go.trai.ch/taskmap/internal/wiring"
)

// ComponentProvider resolves the wired component bundle. Tests substitute a
// provider assembled from mocks.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, resolveComponents))
}

// resolveComponents builds every registered Graft node and returns the bundle.
func resolveComponents(ctx context.Context) (*app.Components, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	return components, err
}

// run assembles the CLI over the provided components and executes it,
// returning the process exit code. A failure before the component graph is up
// goes to stderr; everything after that reports through the logger.
func run(ctx context.Context, args []string, stderr io.Writer, provide ComponentProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provide(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
