package taskfile

import (
	"go.trai.ch/taskmap/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// document is the decoded form of one taskfile. Decoding walks yaml.Node
// directly so mapping order survives and the include/dependency union
// shapes produce named schema errors instead of zero values. Unknown
// top-level keys are ignored.
type document struct {
	Includes []includeEntry
	Tasks    []taskEntry
}

// includeEntry imports another taskfile under a namespace. The value side
// is either a bare path or a mapping carrying a taskfile key.
type includeEntry struct {
	Namespace string
	Path      string
}

// taskEntry is one task with its declared dependencies, in document order.
type taskEntry struct {
	Name string
	Deps []depEntry
}

// depEntry is one dependency declaration: a bare task name or a mapping
// carrying a task key.
type depEntry struct {
	Task string
}

// decodeDocument parses raw taskfile bytes into a document.
func decodeDocument(data []byte) (*document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrTaskfileParse.Error())
	}
	if len(root.Content) == 0 {
		return nil, domain.ErrDocumentNotMapping
	}

	var doc document
	if err := root.Content[0].Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UnmarshalYAML decodes the top-level mapping. Includes and tasks keep
// their document order; a document without a tasks mapping is invalid,
// included documents too.
func (d *document) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return domain.ErrDocumentNotMapping
	}

	tasksSeen := false
	for key, val := range mappingPairs(value) {
		if !isString(key) {
			continue
		}
		switch key.Value {
		case "includes":
			if err := d.decodeIncludes(val); err != nil {
				return err
			}
		case "tasks":
			tasksSeen = true
			if err := d.decodeTasks(val); err != nil {
				return err
			}
		}
	}

	if !tasksSeen {
		return domain.ErrTasksNotFound
	}
	return nil
}

func (d *document) decodeIncludes(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return domain.ErrIncludesNotMapping
	}

	for key, val := range mappingPairs(node) {
		if !isString(key) {
			return domain.ErrNamespaceNotString
		}

		path, err := decodeIncludePath(val)
		if err != nil {
			return zerr.With(err, "namespace", key.Value)
		}

		d.Includes = append(d.Includes, includeEntry{
			Namespace: key.Value,
			Path:      path,
		})
	}
	return nil
}

// decodeIncludePath resolves the union shape of an include value.
func decodeIncludePath(node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if !isString(node) {
			return "", domain.ErrIncludeInvalid
		}
		return node.Value, nil
	case yaml.MappingNode:
		for key, val := range mappingPairs(node) {
			if isString(key) && key.Value == "taskfile" && isString(val) {
				return val.Value, nil
			}
		}
		return "", domain.ErrIncludePathMissing
	default:
		return "", domain.ErrIncludeInvalid
	}
}

func (d *document) decodeTasks(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return domain.ErrTasksNotMapping
	}

	for key, val := range mappingPairs(node) {
		if !isString(key) {
			return domain.ErrTaskNameNotString
		}

		task, err := decodeTask(key.Value, val)
		if err != nil {
			return err
		}
		d.Tasks = append(d.Tasks, task)
	}
	return nil
}

func decodeTask(name string, node *yaml.Node) (taskEntry, error) {
	task := taskEntry{Name: name}

	if node.Kind != yaml.MappingNode {
		return task, zerr.With(domain.ErrTaskNotMapping, "task", name)
	}

	for key, val := range mappingPairs(node) {
		if !isString(key) || key.Value != "deps" {
			continue
		}
		deps, err := decodeDeps(val)
		if err != nil {
			return task, zerr.With(err, "task", name)
		}
		task.Deps = deps
	}
	return task, nil
}

func decodeDeps(node *yaml.Node) ([]depEntry, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, domain.ErrDepsNotList
	}

	deps := make([]depEntry, 0, len(node.Content))
	for _, item := range node.Content {
		dep, err := decodeDep(item)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// decodeDep resolves the union shape of one dependency declaration.
func decodeDep(node *yaml.Node) (depEntry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if !isString(node) {
			return depEntry{}, domain.ErrDepInvalid
		}
		return depEntry{Task: node.Value}, nil
	case yaml.MappingNode:
		for key, val := range mappingPairs(node) {
			if isString(key) && key.Value == "task" && isString(val) {
				return depEntry{Task: val.Value}, nil
			}
		}
		return depEntry{}, domain.ErrDepNameMissing
	default:
		return depEntry{}, domain.ErrDepInvalid
	}
}

// mappingPairs iterates key/value node pairs of a mapping in document order.
func mappingPairs(node *yaml.Node) func(yield func(*yaml.Node, *yaml.Node) bool) {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if !yield(node.Content[i], node.Content[i+1]) {
				return
			}
		}
	}
}

// isString reports whether the node is a plain string scalar.
func isString(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!str"
}
