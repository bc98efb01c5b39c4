// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/taskmap/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// fielder describes an error that carries metadata attached via zerr.With.
// This matches the Fields() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// Errors without metadata are rendered plain.
type fielder interface {
	Fields() map[string]any
}

// ErrorEntry is one link of an error chain prepared for rendering: the raw
// message plus any metadata attached to that link.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	verbose  bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
// It preserves the current JSON mode and verbosity settings.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
// When enabled, logs are output as JSON. When disabled, pretty-printed logs are used.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose lowers the log level to debug so diagnostic messages are emitted.
// The output destination and JSON mode are preserved.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.verbose = enable
	l.rebuild()
}

// rebuild swaps the underlying slog handler to match the current settings.
// Callers must hold the write lock.
func (l *Logger) rebuild() {
	level := slog.LevelInfo
	if l.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Debug logs a diagnostic message. It is dropped unless verbose mode is on.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	entries := collectErrorEntries(err)
	if len(entries) == 0 {
		return
	}

	l.logger.Error(formatErrorEntries(entries))
}

// collectErrorEntries walks the error chain and extracts one entry per link.
// Links that expose their own message via messager contribute that message
// plus any attached metadata; the first link that does not is rendered with
// its full Error() text and terminates the walk.
func collectErrorEntries(err error) []ErrorEntry {
	if err == nil {
		return nil
	}

	var entries []ErrorEntry
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if f, ok := current.(fielder); ok {
			entry.Metadata = f.Fields()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders collected entries hierarchically: the first
// entry becomes the main error line, the rest are listed as causes.
func formatErrorEntries(entries []ErrorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string

	mainLines := strings.Split(entries[0].Message, "\n")
	lines = append(lines, "Error: "+mainLines[0])
	// Indent any continuation lines to align with "Error: "
	for _, line := range mainLines[1:] {
		lines = append(lines, "       "+line)
	}
	lines = append(lines, metadataLines(entries[0].Metadata, "       ")...)

	if len(entries) > 1 {
		lines = append(lines, "", "  Caused by:")

		for _, entry := range entries[1:] {
			causeLines := strings.Split(entry.Message, "\n")
			lines = append(lines, "    → "+causeLines[0])
			// Indent any continuation lines to align with the arrow
			for _, line := range causeLines[1:] {
				lines = append(lines, "      "+line)
			}
			lines = append(lines, metadataLines(entry.Metadata, "      ")...)
		}
	}

	return strings.Join(lines, "\n")
}

// metadataLines renders metadata as indented "key: value" lines in
// alphabetical key order.
func metadataLines(metadata map[string]any, indent string) []string {
	if len(metadata) == 0 {
		return nil
	}

	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, metadata[key]))
	}

	return lines
}
