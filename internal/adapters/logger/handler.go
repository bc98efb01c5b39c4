package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/taskmap/internal/ui/output"
	"go.trai.ch/taskmap/internal/ui/style"
)

// PrettyHandler renders slog records as single colored lines: a glyph for
// warnings and errors, the message, then any attributes as key=value pairs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Level
	preset []slog.Attr
	group  string
}

// NewPrettyHandler returns a handler writing to w. A nil writer falls back
// to os.Stderr. The level is fixed at construction time; the logger swaps
// handlers when verbosity changes.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether records at the given level are emitted.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes one formatted line for the record.
//
//nolint:gocritic // slog.Handler takes the record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	prefix, color := levelStyle(r.Level)

	var line strings.Builder
	line.WriteString(prefix)
	line.WriteString(r.Message)

	for _, attr := range h.preset {
		writeAttr(&line, h.group, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&line, h.group, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a handler that prepends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	merged := make([]slog.Attr, 0, len(h.preset)+len(attrs))
	merged = append(merged, h.preset...)
	merged = append(merged, attrs...)

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		preset: merged,
		group:  h.group,
	}
}

// WithGroup returns a handler that prefixes attribute keys with name.
// Only the innermost group is kept; log output here is flat, not nested.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		preset: h.preset,
		group:  name,
	}
}

// levelStyle maps a record level to its line prefix and color.
func levelStyle(level slog.Level) (string, termenv.Color) {
	switch level {
	case slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// writeAttr appends one " key=value" pair, applying the group prefix.
func writeAttr(b *strings.Builder, group string, attr slog.Attr) {
	b.WriteString(" ")
	if group != "" {
		b.WriteString(group)
		b.WriteString(".")
	}
	b.WriteString(attr.Key)
	b.WriteString("=")
	b.WriteString(attr.Value.String())
}
