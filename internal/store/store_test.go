package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dsa/internal/store"
)

func TestMemoryStoreOrderedListing(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore[int, int]()
	for _, v := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, s.AddVertex(v, v, graph.VertexProperties{}))
	}

	got, err := s.ListVertices()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	count, err := s.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	err = s.AddVertex(1, 1, graph.VertexProperties{})
	assert.ErrorIs(t, err, graph.ErrVertexAlreadyExists)
}

func TestMemoryStoreEdges(t *testing.T) {
	t.Parallel()

	g := store.New(graph.IntHash, graph.Directed(), graph.Weighted())
	for v := range 4 {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(0, 3, graph.EdgeWeight(7)))
	require.NoError(t, g.AddEdge(0, 1, graph.EdgeWeight(2)))
	require.NoError(t, g.AddEdge(2, 1, graph.EdgeWeight(5)))

	edges, err := g.Edges()
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, [2]int{0, 1}, [2]int{edges[0].Source, edges[0].Target})
	assert.Equal(t, [2]int{0, 3}, [2]int{edges[1].Source, edges[1].Target})
	assert.Equal(t, [2]int{2, 1}, [2]int{edges[2].Source, edges[2].Target})

	err = g.AddEdge(0, 1)
	assert.ErrorIs(t, err, graph.ErrEdgeAlreadyExists)

	err = g.RemoveVertex(0)
	assert.ErrorIs(t, err, graph.ErrVertexHasEdges)
}

func TestMemoryStoreSuccessors(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore[string, string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.AddVertex(v, v, graph.VertexProperties{}))
	}
	require.NoError(t, s.AddEdge("a", "d", graph.Edge[string]{Source: "a", Target: "d"}))
	require.NoError(t, s.AddEdge("a", "b", graph.Edge[string]{Source: "a", Target: "b"}))
	require.NoError(t, s.AddEdge("a", "c", graph.Edge[string]{Source: "a", Target: "c"}))

	got, err := s.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, got)

	got, err = s.Successors("b")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.Successors("z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestMemoryStoreUpdate(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore[int, int]()
	require.NoError(t, s.AddVertex(1, 1, graph.VertexProperties{}))
	require.NoError(t, s.AddVertex(2, 2, graph.VertexProperties{}))
	require.NoError(t, s.AddEdge(1, 2, graph.Edge[int]{Source: 1, Target: 2, Properties: graph.EdgeProperties{Weight: 3}}))

	err := s.UpdateEdge(1, 2, graph.Edge[int]{Source: 1, Target: 2, Properties: graph.EdgeProperties{Weight: 10}})
	require.NoError(t, err)

	edge, err := s.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, edge.Properties.Weight)

	err = s.UpdateEdge(2, 1, graph.Edge[int]{})
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	total, err := s.TotalWeight()
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	err = s.UpdateVertex(1, graph.VertexAttribute("color", "red"))
	require.NoError(t, err)
	_, props, err := s.Vertex(1)
	require.NoError(t, err)
	assert.Equal(t, "red", props.Attributes["color"])

	err = s.UpdateVertex(9, graph.VertexAttribute("color", "red"))
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	require.NoError(t, s.RemoveEdge(1, 2))
	require.NoError(t, s.RemoveVertex(1))
	_, _, err = s.Vertex(1)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestMemoryStoreCreatesCycle(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore[int, int]()
	for v := range 3 {
		require.NoError(t, s.AddVertex(v, v, graph.VertexProperties{}))
	}
	require.NoError(t, s.AddEdge(0, 1, graph.Edge[int]{Source: 0, Target: 1}))
	require.NoError(t, s.AddEdge(1, 2, graph.Edge[int]{Source: 1, Target: 2}))

	ms, ok := s.(*store.MemoryStore[int, int])
	require.True(t, ok)

	cycle, err := ms.CreatesCycle(2, 0)
	require.NoError(t, err)
	assert.True(t, cycle)

	cycle, err = ms.CreatesCycle(0, 2)
	require.NoError(t, err)
	assert.False(t, cycle)

	cycle, err = ms.CreatesCycle(1, 1)
	require.NoError(t, err)
	assert.True(t, cycle)

	_, err = ms.CreatesCycle(0, 7)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}
