// Package output constructs termenv outputs with a shared color profile
// policy so every log line degrades the same way in pipes and CI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile picks the profile for the current environment. NO_COLOR
// disables styling entirely; otherwise the terminal's advertised
// capabilities decide.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New wraps w in a termenv.Output using ColorProfile. A nil writer
// falls back to os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
