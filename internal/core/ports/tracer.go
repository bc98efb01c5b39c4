package ports

import "context"

// Tracer creates spans around pipeline stages.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span with the given name. The returned context carries
	// the span so nested stages attach to it.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one timed unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span and marks it failed.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
