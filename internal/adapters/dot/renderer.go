// Package dot renders a task graph as Graphviz DOT text.
package dot

import (
	"strings"

	"go.trai.ch/taskmap/internal/core/domain"
)

// Renderer implements ports.Renderer by serializing the graph to DOT.
//
// Output is deterministic: nodes in registration order, then edges in
// declaration order, so the same graph always renders to the same bytes.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render serializes the graph. Nodes in cyclic are colored red, and an
// edge is colored red when both of its endpoints are. Edge labels carry
// no layout information and are not emitted.
func (r *Renderer) Render(g *domain.Graph, cyclic domain.NodeSet) []byte {
	var sb strings.Builder
	sb.WriteString("digraph tasks {\n")

	for id, name := range g.Nodes() {
		sb.WriteString("  " + quote(name))
		if cyclic.Has(id) {
			sb.WriteString(` [color="red"]`)
		}
		sb.WriteString(";\n")
	}

	for e := range g.Edges() {
		sb.WriteString("  " + quote(g.Name(e.From)) + " -> " + quote(g.Name(e.To)))
		if cyclic.Has(e.From) && cyclic.Has(e.To) {
			sb.WriteString(` [color="red"]`)
		}
		sb.WriteString(";\n")
	}

	sb.WriteString("}\n")
	return []byte(sb.String())
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote wraps a task name in a quoted DOT identifier.
func quote(name string) string {
	return `"` + quoteEscaper.Replace(name) + `"`
}
