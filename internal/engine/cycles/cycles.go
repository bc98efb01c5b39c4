// Package cycles finds strongly connected components in the task graph.
package cycles

import (
	"fmt"

	"go.trai.ch/taskmap/internal/core/domain"
	"go.trai.ch/taskmap/internal/core/ports"
)

// Detector reports which tasks of a graph participate in dependency cycles.
//
// Detection runs Tarjan's algorithm: a single depth-first pass assigning
// index and lowlink values, popping a strongly connected component whenever
// a root node is found. Components of one node are not cycles, so a task
// depending on itself is not reported.
type Detector struct {
	Logger ports.Logger
}

// NewDetector creates a new Detector with the given logger.
func NewDetector(logger ports.Logger) *Detector {
	return &Detector{Logger: logger}
}

// Report describes the cyclic portion of a graph.
type Report struct {
	// Groups holds every strongly connected component with more than one
	// node, in the order the search completed them.
	Groups [][]domain.NodeID

	// Members contains every node belonging to one of the Groups.
	Members domain.NodeSet
}

// Cyclic reports whether the graph contains at least one dependency cycle.
func (r *Report) Cyclic() bool {
	return len(r.Groups) > 0
}

// Detect runs cycle detection over the whole graph.
func (d *Detector) Detect(g *domain.Graph) *Report {
	n := g.NodeCount()
	state := &tarjanState{
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
		adj:     make([][]domain.NodeID, n),
	}
	for i := range state.index {
		state.index[i] = -1
	}
	for e := range g.Edges() {
		state.adj[e.From] = append(state.adj[e.From], e.To)
	}

	for v := range n {
		if state.index[v] == -1 {
			state.strongConnect(domain.NodeID(v))
		}
	}

	report := &Report{Members: domain.NewNodeSet()}
	for _, group := range state.groups {
		if len(group) < 2 {
			continue
		}
		report.Groups = append(report.Groups, group)
		for _, id := range group {
			report.Members.Add(id)
		}
	}

	if report.Cyclic() {
		d.Logger.Debug(fmt.Sprintf("detected %d dependency cycles", len(report.Groups)))
	}
	return report
}

// tarjanState holds the search state during one Detect call.
type tarjanState struct {
	next    int
	index   []int // -1 means unvisited
	lowlink []int
	onStack []bool
	stack   []domain.NodeID
	adj     [][]domain.NodeID
	groups  [][]domain.NodeID
}

func (s *tarjanState) strongConnect(v domain.NodeID) {
	s.index[v] = s.next
	s.lowlink[v] = s.next
	s.next++
	s.stack = append(s.stack, v)
	s.onStack[v] = true

	for _, w := range s.adj[v] {
		if s.index[w] == -1 {
			s.strongConnect(w)
			if s.lowlink[w] < s.lowlink[v] {
				s.lowlink[v] = s.lowlink[w]
			}
		} else if s.onStack[w] {
			// w is on the stack, so it belongs to the current component.
			if s.index[w] < s.lowlink[v] {
				s.lowlink[v] = s.index[w]
			}
		}
	}

	// v roots a component: pop the stack down to it.
	if s.lowlink[v] == s.index[v] {
		var group []domain.NodeID
		for {
			w := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			s.onStack[w] = false
			group = append(group, w)
			if w == v {
				break
			}
		}
		s.groups = append(s.groups, group)
	}
}
