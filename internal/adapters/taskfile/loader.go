// Package taskfile provides the taskfile graph loader for taskmap.
package taskfile

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/taskmap/internal/core/domain"
	"go.trai.ch/taskmap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.GraphLoader using YAML taskfiles.
type Loader struct {
	FS     FileSystem
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given filesystem and logger.
func NewLoader(fs FileSystem, logger ports.Logger) *Loader {
	return &Loader{FS: fs, Logger: logger}
}

// Load reads the taskfile at path, follows its includes and returns the
// assembled dependency graph. Include paths are resolved relative to the
// working directory, not the including file.
func (l *Loader) Load(path string) (*domain.Graph, error) {
	g := domain.NewGraph()
	if err := l.build(path, nil, g, map[string]bool{}); err != nil {
		return nil, err
	}
	return g, nil
}

// build merges one taskfile into the graph. Includes are processed before
// the file's own tasks, each under its namespace prefix. Nodes are created
// on first mention, so a dependency may name a task that is never declared.
func (l *Loader) build(path string, prefix []string, g *domain.Graph, active map[string]bool) error {
	if active[path] {
		return zerr.With(domain.ErrIncludeCycle, "path", path)
	}
	active[path] = true
	defer delete(active, path)

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTaskfileRead.Error()), "path", path)
	}
	g.AddSource(path)

	doc, err := decodeDocument(data)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	for _, inc := range doc.Includes {
		nested := append(slices.Clone(prefix), inc.Namespace)
		if err := l.build(inc.Path, nested, g, active); err != nil {
			return err
		}
	}

	for _, task := range doc.Tasks {
		taskID := g.AddNode(qualify(prefix, task.Name))
		for _, dep := range task.Deps {
			depID := g.AddNode(qualify(prefix, dep.Task))
			g.AddEdge(depID, taskID)
		}
	}

	l.Logger.Debug(fmt.Sprintf("loaded %s: %d tasks", path, len(doc.Tasks)))
	return nil
}

// qualify prepends the namespace prefix to a task or dependency name.
// Dependencies are qualified with the prefix of the file declaring them,
// so cross-namespace references need the full name spelled out.
func qualify(prefix []string, name string) string {
	if len(prefix) == 0 {
		return name
	}
	return strings.Join(prefix, domain.NamespaceSeparator) + domain.NamespaceSeparator + name
}
