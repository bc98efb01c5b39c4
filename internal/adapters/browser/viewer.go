// Package browser opens rendered images with the system default browser.
package browser

import (
	open "github.com/pkg/browser"
	"go.trai.ch/taskmap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Browser implements ports.Viewer using the system default browser.
type Browser struct {
	Logger   ports.Logger
	OpenFile func(path string) error
}

// NewBrowser creates a viewer that opens files in the default browser.
func NewBrowser(logger ports.Logger) *Browser {
	return &Browser{
		Logger:   logger,
		OpenFile: open.OpenFile,
	}
}

// Open displays the file at path in the default browser.
func (b *Browser) Open(path string) error {
	b.Logger.Debug("opening " + path)

	if err := b.OpenFile(path); err != nil {
		return zerr.With(zerr.Wrap(err, "couldn't open image in browser"), "path", path)
	}

	return nil
}
