// Package telemetry implements pipeline tracing using OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/taskmap/internal/core/ports"
)

// Tracer implements ports.Tracer on the global OpenTelemetry provider.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer recording under the given instrumentation name.
func NewTracer(name string) *Tracer {
	return &Tracer{tracer: otel.Tracer(name)}
}

// Start begins a span and returns a context carrying it, so nested pipeline
// stages attach as children.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, s := t.tracer.Start(ctx, name)
	return ctx, &span{inner: s}
}

// span adapts one OpenTelemetry span to ports.Span.
type span struct {
	inner trace.Span
}

// End completes the span.
func (s *span) End() {
	s.inner.End()
}

// RecordError records err on the span and marks it failed.
func (s *span) RecordError(err error) {
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}

// SetAttribute attaches a key-value pair, keeping the native attribute type
// where one exists. Anything else is stringified.
func (s *span) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.inner.SetAttributes(attribute.String(key, v))
	case int:
		s.inner.SetAttributes(attribute.Int(key, v))
	case int64:
		s.inner.SetAttributes(attribute.Int64(key, v))
	case bool:
		s.inner.SetAttributes(attribute.Bool(key, v))
	default:
		s.inner.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
