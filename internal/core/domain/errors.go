package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskfileRead is returned when the root or an included taskfile cannot be opened or read.
	ErrTaskfileRead = zerr.New("couldn't read taskfile")

	// ErrTaskfileParse is returned when a taskfile is not valid YAML.
	ErrTaskfileParse = zerr.New("couldn't parse taskfile")

	// ErrDocumentNotMapping is returned when a taskfile document is not a mapping at the top level.
	ErrDocumentNotMapping = zerr.New("taskfile is not a mapping")

	// ErrIncludesNotMapping is returned when the includes key is present but not a mapping.
	ErrIncludesNotMapping = zerr.New("includes is not a mapping")

	// ErrNamespaceNotString is returned when an include namespace key is not a string.
	ErrNamespaceNotString = zerr.New("namespace is not a string")

	// ErrIncludePathMissing is returned when an include descriptor has no usable taskfile path.
	ErrIncludePathMissing = zerr.New("couldn't find taskfile name to include")

	// ErrIncludeInvalid is returned when an include value is neither a path nor a descriptor mapping.
	ErrIncludeInvalid = zerr.New("incorrect type for an include")

	// ErrIncludeCycle is returned when taskfiles include each other in a loop.
	ErrIncludeCycle = zerr.New("include cycle detected")

	// ErrTasksNotFound is returned when a processed document has no tasks key.
	ErrTasksNotFound = zerr.New("tasks not found")

	// ErrTasksNotMapping is returned when the tasks key is present but not a mapping.
	ErrTasksNotMapping = zerr.New("tasks is not a mapping")

	// ErrTaskNameNotString is returned when a task name key is not a string.
	ErrTaskNameNotString = zerr.New("task name is not a string")

	// ErrTaskNotMapping is returned when a task descriptor is not a mapping.
	ErrTaskNotMapping = zerr.New("task is not a mapping")

	// ErrDepsNotList is returned when a task's deps key is not a sequence.
	ErrDepsNotList = zerr.New("deps is not a list")

	// ErrDepNameMissing is returned when a dependency descriptor has no usable task name.
	ErrDepNameMissing = zerr.New("couldn't find name of task")

	// ErrDepInvalid is returned when a dependency entry is neither a name nor a descriptor mapping.
	ErrDepInvalid = zerr.New("incorrect type for a dependency")

	// ErrEngineNotFound is returned when the graphviz dot binary is not installed.
	ErrEngineNotFound = zerr.New("command `dot` not found (please, make sure `graphviz` is installed)")

	// ErrEngineFailed is returned when the layout engine exits with a non-zero status.
	ErrEngineFailed = zerr.New("failed to create image")

	// ErrImageWrite is returned when the rendered image cannot be written to disk.
	ErrImageWrite = zerr.New("couldn't write image file")
)
