package greedy_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/dominikbraun/graph"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dsa/internal/store"
	"github.com/askiada/go-dsa/pkg/greedy"
)

func TestMaxFlow(t *testing.T) {
	t.Parallel()

	flow, err := greedy.MaxFlow(directed(t, clrsMatrix(t)), 0, 5)
	require.NoError(t, err)

	assert.Equal(t, 23, flow.Value)
	assert.Positive(t, flow.Augmentations)
	assert.Equal(t, []int{0, 1, 2, 4}, flow.MinCut())

	for _, e := range [][2]int{{1, 3}, {4, 3}, {4, 5}} {
		f, err := flow.EdgeFlow(e[0], e[1])
		require.NoError(t, err)
		assert.Equal(t, clrsMatrix(t)[e[0]][e[1]], f, "edge %v", e)
	}

	_, err = flow.EdgeFlow(5, 0)
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	assertValidFlow(t, clrsMatrix(t), flow)
}

func TestMaxFlowNoPath(t *testing.T) {
	t.Parallel()

	flow, err := greedy.MaxFlow(directed(t, greedy.Matrix{
		{0, 5, 0},
		{0, 0, 0},
		{0, 7, 0},
	}), 0, 2)
	require.NoError(t, err)

	assert.Zero(t, flow.Value)
	assert.Zero(t, flow.Augmentations)
	assert.Equal(t, []int{0, 1}, flow.MinCut())
}

func TestMaxFlowAntiparallelEdges(t *testing.T) {
	t.Parallel()

	m := greedy.Matrix{
		{0, 10, 5, 0},
		{0, 0, 4, 8},
		{0, 6, 0, 3},
		{0, 0, 0, 0},
	}

	flow, err := greedy.MaxFlow(directed(t, m), 0, 3)
	require.NoError(t, err)

	assert.Equal(t, 11, flow.Value)
	assertValidFlow(t, m, flow)
}

func TestMaxFlowErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		graph        graph.Graph[int, int]
		source, sink int
		errIs        error
	}{
		"undirected": {
			graph: undirected(t, gfgMatrix(t)), source: 0, sink: 4,
			errIs: greedy.ErrUndirectedGraph,
		},
		"same vertex": {
			graph: directed(t, clrsMatrix(t)), source: 2, sink: 2,
			errIs: greedy.ErrSameSourceSink,
		},
		"unknown sink": {
			graph: directed(t, clrsMatrix(t)), source: 0, sink: 99,
			errIs: graph.ErrVertexNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := greedy.MaxFlow(tc.graph, tc.source, tc.sink)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestMaxFlowUnweighted(t *testing.T) {
	t.Parallel()

	g := store.New(graph.StringHash, graph.Directed())
	for _, v := range []string{"s", "a", "b", "t"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("s", "a"))
	require.NoError(t, g.AddEdge("s", "b"))
	require.NoError(t, g.AddEdge("a", "t"))
	require.NoError(t, g.AddEdge("b", "t"))
	require.NoError(t, g.AddEdge("a", "b"))

	flow, err := greedy.MaxFlow(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, 2, flow.Value)
	assert.Equal(t, []string{"s"}, flow.MinCut())
}

func TestMaxFlowRandomisedCut(t *testing.T) {
	// gofakeit draws from the global source, keep this test sequential so the seed holds.
	gofakeit.Seed(17)

	for round := 0; round < 25; round++ {
		size := gofakeit.Number(2, 10)
		m := randomMatrix(t, size, 40, 25, false)

		flow, err := greedy.MaxFlow(directed(t, m), 0, size-1)
		require.NoError(t, err)

		assertValidFlow(t, m, flow)

		cut := flow.MinCut()
		assert.Contains(t, cut, 0)
		assert.NotContains(t, cut, size-1)

		capacity := 0
		for _, u := range cut {
			for v, c := range m[u] {
				if !lo.Contains(cut, v) {
					capacity += c
				}
			}
		}
		assert.Equal(t, capacity, flow.Value, "round %d", round)
	}
}

// assertValidFlow checks capacity limits and conservation at every inner vertex.
func assertValidFlow(t *testing.T, m greedy.Matrix, flow *greedy.Flow[int]) {
	t.Helper()

	balance := make([]int, len(m))
	for _, e := range flow.Edges() {
		assert.Equal(t, m[e.Source][e.Target], e.Capacity)
		assert.GreaterOrEqual(t, e.Flow, 0)
		assert.LessOrEqual(t, e.Flow, e.Capacity)

		balance[e.Source] -= e.Flow
		balance[e.Target] += e.Flow
	}

	for v, b := range balance {
		switch v {
		case flow.Source:
			assert.Equal(t, -flow.Value, b)
		case flow.Sink:
			assert.Equal(t, flow.Value, b)
		default:
			assert.Zero(t, b, "vertex %d", v)
		}
	}
}

func TestMaxFlowSelfLoop(t *testing.T) {
	t.Parallel()

	g := edgeList(t, 2, true,
		[3]int{0, 0, 5},
		[3]int{0, 1, 3},
	)

	flow, err := greedy.MaxFlow(g, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, flow.Value)
	assert.Equal(t, []greedy.FlowEdge[int]{
		{Source: 0, Target: 1, Flow: 3, Capacity: 3},
	}, flow.Edges())

	_, err = flow.EdgeFlow(0, 0)
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)
}

func TestMaxFlowValueOverflow(t *testing.T) {
	t.Parallel()

	half := math.MaxInt/2 + 1
	g := edgeList(t, 4, true,
		[3]int{0, 1, half},
		[3]int{1, 3, half},
		[3]int{0, 2, half},
		[3]int{2, 3, half},
	)

	_, err := greedy.MaxFlow(g, 0, 3)
	assert.ErrorIs(t, err, greedy.ErrOverflow)
}

func TestFlowEdgeSaturated(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		edge     greedy.FlowEdge[int]
		expected bool
	}{
		"full":          {edge: greedy.FlowEdge[int]{Flow: 12, Capacity: 12}, expected: true},
		"partial":       {edge: greedy.FlowEdge[int]{Flow: 11, Capacity: 16}},
		"idle":          {edge: greedy.FlowEdge[int]{Capacity: 4}},
		"zero capacity": {edge: greedy.FlowEdge[int]{}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.edge.Saturated())
		})
	}

	flow, err := greedy.MaxFlow(directed(t, clrsMatrix(t)), 0, 5)
	require.NoError(t, err)

	saturated := lo.Filter(flow.Edges(), func(e greedy.FlowEdge[int], _ int) bool {
		return e.Saturated()
	})
	assert.Subset(t, saturated, []greedy.FlowEdge[int]{
		{Source: 1, Target: 3, Flow: 12, Capacity: 12},
		{Source: 4, Target: 3, Flow: 7, Capacity: 7},
		{Source: 4, Target: 5, Flow: 4, Capacity: 4},
	})
}
