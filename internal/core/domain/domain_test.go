package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskmap/internal/core/domain"
)

func TestGraph_AddNode(t *testing.T) {
	t.Run("assigns dense ids in registration order", func(t *testing.T) {
		g := domain.NewGraph()

		foo := g.AddNode("foo")
		bar := g.AddNode("bar")

		assert.Equal(t, domain.NodeID(0), foo)
		assert.Equal(t, domain.NodeID(1), bar)
		assert.Equal(t, 2, g.NodeCount())
		assert.Equal(t, "foo", g.Name(foo))
		assert.Equal(t, "bar", g.Name(bar))
	})

	t.Run("is idempotent by exact name", func(t *testing.T) {
		g := domain.NewGraph()

		first := g.AddNode("build:compile")
		second := g.AddNode("build:compile")

		assert.Equal(t, first, second)
		assert.Equal(t, 1, g.NodeCount())
	})

	t.Run("lookup reports unknown names", func(t *testing.T) {
		g := domain.NewGraph()
		g.AddNode("foo")

		id, ok := g.Lookup("foo")
		require.True(t, ok)
		assert.Equal(t, domain.NodeID(0), id)

		_, ok = g.Lookup("missing")
		assert.False(t, ok)
	})
}

func TestGraph_AddEdge(t *testing.T) {
	t.Run("preserves parallel edges", func(t *testing.T) {
		g := domain.NewGraph()
		dep := g.AddNode("spam")
		task := g.AddNode("bar")

		g.AddEdge(dep, task)
		g.AddEdge(dep, task)

		assert.Equal(t, 2, g.EdgeCount())
	})

	t.Run("labels pair both endpoint names", func(t *testing.T) {
		g := domain.NewGraph()
		dep := g.AddNode("inc1:task2_inc1")
		task := g.AddNode("inc1:task1_inc1")

		g.AddEdge(dep, task)

		var edges []domain.Edge
		for e := range g.Edges() {
			edges = append(edges, e)
		}
		require.Len(t, edges, 1)
		assert.Equal(t, dep, edges[0].From)
		assert.Equal(t, task, edges[0].To)
		assert.Equal(t, "inc1:task2_inc1-inc1:task1_inc1", edges[0].Label)
	})
}

func TestGraph_IterationOrder(t *testing.T) {
	g := domain.NewGraph()
	foo := g.AddNode("foo")
	bar := g.AddNode("bar")
	baz := g.AddNode("baz")
	g.AddEdge(bar, foo)
	g.AddEdge(baz, foo)

	var names []string
	for _, name := range g.Nodes() {
		names = append(names, name)
	}
	assert.Equal(t, []string{"foo", "bar", "baz"}, names)

	var labels []string
	for e := range g.Edges() {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"bar-foo", "baz-foo"}, labels)
}

func TestGraph_Sources(t *testing.T) {
	g := domain.NewGraph()
	g.AddSource("Taskfile.yaml")
	g.AddSource("ci/Taskfile.yaml")

	assert.Equal(t, []string{"Taskfile.yaml", "ci/Taskfile.yaml"}, g.Sources())
}

func TestNodeSet(t *testing.T) {
	s := domain.NewNodeSet()
	require.False(t, s.Has(0))

	s.Add(0)
	s.Add(2)

	assert.True(t, s.Has(0))
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(2))
}
