// Package graphviz lays out graph descriptions by piping them through the
// Graphviz dot binary.
package graphviz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/taskmap/internal/core/domain"
	"go.trai.ch/taskmap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultCommand is the Graphviz binary used to lay out graphs.
const DefaultCommand = "dot"

// Engine implements ports.LayoutEngine using a dot subprocess.
type Engine struct {
	Command string
	Args    []string
	Logger  ports.Logger
}

// NewEngine creates an Engine that produces SVG output with dot.
func NewEngine(logger ports.Logger) *Engine {
	return &Engine{
		Command: DefaultCommand,
		Args:    []string{"-Tsvg"},
		Logger:  logger,
	}
}

// Layout feeds desc to the engine subprocess on stdin and returns the bytes
// it wrote to stdout.
func (e *Engine) Layout(ctx context.Context, desc []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.Command, e.Args...) //nolint:gosec // command is fixed at construction

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEngineFailed.Error())
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEngineFailed.Error())
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrEngineFailed.Error())
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, zerr.With(domain.ErrEngineNotFound, "command", e.Command)
		}
		return nil, zerr.Wrap(err, domain.ErrEngineFailed.Error())
	}

	e.Logger.Debug(fmt.Sprintf("running %s %s", e.Command, strings.Join(e.Args, " ")))

	var outBuf, errBuf bytes.Buffer

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer func() { _ = stdin.Close() }()
		_, err := stdin.Write(desc)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&outBuf, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&errBuf, stderr)
		return err
	})

	// The pipes must be fully drained before Wait closes them.
	ioErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		failure := zerr.With(zerr.Wrap(err, domain.ErrEngineFailed.Error()), "exit_code", exitCode)
		if msg := strings.TrimSpace(errBuf.String()); msg != "" {
			failure = zerr.With(failure, "stderr", msg)
		}
		return nil, failure
	}
	if ioErr != nil {
		return nil, zerr.Wrap(ioErr, domain.ErrEngineFailed.Error())
	}

	return outBuf.Bytes(), nil
}
