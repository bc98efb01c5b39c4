package taskfile

import (
	"io/fs"
	"os"
)

// FileSystem is the loader's view of the disk. Include paths are read
// exactly as written in the document, relative to the working directory.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS reads taskfiles from the host filesystem.
type OSFS struct{}

// NewOSFS returns a FileSystem backed by the operating system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile reads the entire file at path.
func (*OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- the path comes from the command line or a taskfile include
	return os.ReadFile(path)
}

// FSAdapter exposes an fs.FS, such as fstest.MapFS, as a FileSystem.
type FSAdapter struct {
	fsys fs.FS
}

// NewFSAdapter wraps fsys for use as a loader FileSystem.
func NewFSAdapter(fsys fs.FS) *FSAdapter {
	return &FSAdapter{fsys: fsys}
}

// ReadFile reads the entire file at path.
func (a *FSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(a.fsys, path)
}
