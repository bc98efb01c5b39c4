// Package style defines the color palette and glyphs used for terminal
// output. Log rendering is the only consumer; graph colors are chosen by
// the DOT renderer and never pass through here.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs prefixed to warning and error lines.
const (
	Cross   = "✗"
	Warning = "!"
)
