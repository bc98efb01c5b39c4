// Package domain contains the core domain models for the task dependency graph.
package domain

import "iter"

// NodeID identifies a node within a single Graph. IDs are dense offsets
// assigned in registration order, starting at zero.
type NodeID int

// Edge is a directed dependency relation: From must be satisfied before To.
// The label pairs both endpoint names for diagnostics and is never rendered.
type Edge struct {
	From  NodeID
	To    NodeID
	Label string
}

// Graph is a directed dependency graph over fully-qualified task names.
//
// Node identity is exact string equality; AddNode is idempotent so a name
// referenced many times maps to one node. Edges are appended as declared,
// so duplicate dependency declarations produce parallel edges. The graph
// also records which taskfile paths were read while building it.
type Graph struct {
	names   []string
	index   map[string]NodeID
	edges   []Edge
	sources []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]NodeID),
	}
}

// AddNode registers a node for the given fully-qualified name and returns
// its ID. Registering an already-known name returns the existing ID.
func (g *Graph) AddNode(name string) NodeID {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := NodeID(len(g.names))
	g.names = append(g.names, name)
	g.index[name] = id
	return id
}

// Lookup returns the ID registered for name, if any.
func (g *Graph) Lookup(name string) (NodeID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Name returns the fully-qualified name of the given node.
func (g *Graph) Name(id NodeID) string {
	return g.names[id]
}

// AddEdge appends a directed edge from the dependency node to the dependent
// node. Every call appends; parallel edges are preserved.
func (g *Graph) AddEdge(from, to NodeID) {
	g.edges = append(g.edges, Edge{
		From:  from,
		To:    to,
		Label: g.names[from] + "-" + g.names[to],
	})
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	return len(g.names)
}

// EdgeCount returns the number of registered edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns an iterator over node IDs and names in registration order.
func (g *Graph) Nodes() iter.Seq2[NodeID, string] {
	return func(yield func(NodeID, string) bool) {
		for i, name := range g.names {
			if !yield(NodeID(i), name) {
				return
			}
		}
	}
}

// Edges returns an iterator over edges in declaration order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// AddSource records a taskfile path that contributed to this graph.
func (g *Graph) AddSource(path string) {
	g.sources = append(g.sources, path)
}

// Sources returns the taskfile paths read while building the graph, in
// the order they were opened.
func (g *Graph) Sources() []string {
	return g.sources
}

// NodeSet is a set of node identifiers.
type NodeSet map[NodeID]struct{}

// NewNodeSet creates an empty NodeSet.
func NewNodeSet() NodeSet {
	return make(NodeSet)
}

// Add inserts the given node into the set.
func (s NodeSet) Add(id NodeID) {
	s[id] = struct{}{}
}

// Has reports whether the given node is in the set.
func (s NodeSet) Has(id NodeID) bool {
	_, ok := s[id]
	return ok
}
