package dot_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskmap/internal/adapters/dot"
	"go.trai.ch/taskmap/internal/core/domain"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name       string
		nodes      []string
		edges      [][2]string
		cyclic     []string
		goldenName string
	}{
		{
			name:       "empty graph",
			goldenName: "empty",
		},
		{
			name:  "acyclic project",
			nodes: []string{"foo", "bar", "baz", "spam", "eggs"},
			edges: [][2]string{
				{"bar", "foo"},
				{"baz", "foo"},
				{"spam", "bar"},
				{"spam", "baz"},
			},
			goldenName: "acyclic",
		},
		{
			name:  "namespaced include",
			nodes: []string{"inc1:task1_inc1", "inc1:task2_inc1", "foo", "bar", "baz"},
			edges: [][2]string{
				{"inc1:task2_inc1", "inc1:task1_inc1"},
				{"bar", "foo"},
				{"inc1:task1_inc1", "foo"},
			},
			goldenName: "namespaced",
		},
		{
			name:  "cycle flagged red",
			nodes: []string{"a", "b", "c", "d"},
			edges: [][2]string{
				{"a", "b"},
				{"b", "c"},
				{"c", "a"},
				{"c", "d"},
			},
			cyclic:     []string{"a", "b", "c"},
			goldenName: "cycle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(tt.nodes, tt.edges)

			out := dot.NewRenderer().Render(g, cyclicSet(t, g, tt.cyclic))

			gold := goldie.New(t)
			gold.Assert(t, tt.goldenName, out)
		})
	}
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	g := buildGraph(
		[]string{"foo", "bar", "baz"},
		[][2]string{{"bar", "foo"}, {"baz", "foo"}, {"bar", "foo"}},
	)
	cyclic := domain.NewNodeSet()

	first := dot.NewRenderer().Render(g, cyclic)
	second := dot.NewRenderer().Render(g, cyclic)

	assert.Equal(t, first, second)
}

func TestRenderer_Render_ParallelEdges(t *testing.T) {
	g := buildGraph([]string{"x", "y"}, [][2]string{{"x", "y"}, {"x", "y"}})

	out := string(dot.NewRenderer().Render(g, domain.NewNodeSet()))

	assert.Equal(t, "digraph tasks {\n  \"x\";\n  \"y\";\n  \"x\" -> \"y\";\n  \"x\" -> \"y\";\n}\n", out)
}

func TestRenderer_Render_QuoteEscaping(t *testing.T) {
	g := buildGraph(
		[]string{`task "quoted"`, `back\slash`},
		[][2]string{{`task "quoted"`, `back\slash`}},
	)

	out := string(dot.NewRenderer().Render(g, domain.NewNodeSet()))

	assert.Contains(t, out, `"task \"quoted\"";`)
	assert.Contains(t, out, `"back\\slash";`)
	assert.Contains(t, out, `"task \"quoted\"" -> "back\\slash";`)
}

func TestRenderer_Render_EdgeColorNeedsBothEndpoints(t *testing.T) {
	g := buildGraph(
		[]string{"a", "b", "c", "d"},
		[][2]string{
			{"a", "b"},
			{"b", "a"},
			{"c", "d"},
			{"d", "c"},
			{"a", "c"},
			{"b", "e"},
		},
	)

	out := string(dot.NewRenderer().Render(g, cyclicSet(t, g, []string{"a", "b", "c", "d"})))

	// Endpoints in different cycles still color the connecting edge.
	assert.Contains(t, out, `"a" -> "c" [color="red"];`)
	// An edge leaving the cyclic set stays uncolored.
	assert.Contains(t, out, "\"b\" -> \"e\";\n")
	assert.NotContains(t, out, `"b" -> "e" [color="red"]`)
}

// Helpers.

func buildGraph(nodes []string, edges [][2]string) *domain.Graph {
	g := domain.NewGraph()
	for _, name := range nodes {
		g.AddNode(name)
	}
	for _, e := range edges {
		g.AddEdge(g.AddNode(e[0]), g.AddNode(e[1]))
	}
	return g
}

func cyclicSet(t *testing.T, g *domain.Graph, names []string) domain.NodeSet {
	t.Helper()

	set := domain.NewNodeSet()
	for _, name := range names {
		id, ok := g.Lookup(name)
		require.True(t, ok, "unknown node %s", name)
		set.Add(id)
	}
	return set
}
