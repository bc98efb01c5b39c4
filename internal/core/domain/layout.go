package domain

const (
	// TaskfileName is the name of the root taskfile read from the working directory.
	TaskfileName = "Taskfile.yaml"

	// ImageName is the name of the rendered graph image written next to the taskfile.
	ImageName = "Taskfile.svg"

	// NamespaceSeparator joins namespace segments into a fully-qualified task name.
	NamespaceSeparator = ":"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for written files (rw-r--r--).
	FilePerm = 0o644
)
