package ports

import "context"

// LayoutEngine turns a textual graph description into rendered image bytes.
// Implementations invoke an external tool; the call is fatal on failure and
// carries no retry semantics.
//
//go:generate mockgen -source=layout_engine.go -destination=mocks/mock_layout_engine.go -package=mocks
type LayoutEngine interface {
	// Layout feeds the description to the engine and returns the image it
	// produced. On any failure the accumulated output is discarded.
	Layout(ctx context.Context, desc []byte) ([]byte, error)
}
