package telemetry

import (
	"context"
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/taskmap/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to report stage timings through
// the logger. Timings are logged at debug level, so they show up only in
// verbose mode.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a bridge reporting through the given logger.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is a no-op; only finished spans are reported.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the finished span's name and elapsed time.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	b.logger.Debug(fmt.Sprintf("%s took %s", s.Name(), elapsed))
}

// ForceFlush implements sdktrace.SpanProcessor; there is nothing buffered.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown implements sdktrace.SpanProcessor; there is nothing to stop.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
