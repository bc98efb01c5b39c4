package ports

// Viewer opens a rendered image for the user.
//
//go:generate mockgen -source=viewer.go -destination=mocks/mock_viewer.go -package=mocks
type Viewer interface {
	// Open displays the file at the given path, typically in the default
	// browser. It returns once the viewer has been launched.
	Open(path string) error
}
