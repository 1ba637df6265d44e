package greedy_test

import (
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-dsa/internal/store"
	"github.com/askiada/go-dsa/pkg/greedy"
)

// gfgMatrix is the symmetric 9 vertex example used across the greedy tests.
func gfgMatrix(t *testing.T) greedy.Matrix {
	t.Helper()

	return greedy.Matrix{
		{0, 4, 0, 0, 0, 0, 0, 8, 0},
		{4, 0, 8, 0, 0, 0, 0, 11, 0},
		{0, 8, 0, 7, 0, 4, 0, 0, 2},
		{0, 0, 7, 0, 9, 14, 0, 0, 0},
		{0, 0, 0, 9, 0, 10, 0, 0, 0},
		{0, 0, 4, 14, 10, 0, 2, 0, 0},
		{0, 0, 0, 0, 0, 2, 0, 1, 6},
		{8, 11, 0, 0, 0, 0, 1, 0, 7},
		{0, 0, 2, 0, 0, 0, 6, 7, 0},
	}
}

// clrsMatrix is the 6 vertex flow network whose maximum flow from 0 to 5 is 23.
func clrsMatrix(t *testing.T) greedy.Matrix {
	t.Helper()

	return greedy.Matrix{
		{0, 16, 13, 0, 0, 0},
		{0, 0, 10, 12, 0, 0},
		{0, 4, 0, 0, 14, 0},
		{0, 0, 9, 0, 0, 20},
		{0, 0, 0, 7, 0, 4},
		{0, 0, 0, 0, 0, 0},
	}
}

// randomMatrix returns a size x size matrix where roughly density percent of the
// off-diagonal entries hold a weight between 1 and maxWeight.
func randomMatrix(t *testing.T, size, density, maxWeight int, symmetric bool) greedy.Matrix {
	t.Helper()

	m := make(greedy.Matrix, size)
	for i := range m {
		m[i] = make([]int, size)
	}

	for i := range m {
		for j := range m[i] {
			if i == j || (symmetric && j < i) {
				continue
			}
			if gofakeit.Number(1, 100) > density {
				continue
			}
			m[i][j] = gofakeit.Number(1, maxWeight)
			if symmetric {
				m[j][i] = m[i][j]
			}
		}
	}

	return m
}

func directed(t *testing.T, m greedy.Matrix) graph.Graph[int, int] {
	t.Helper()

	g, err := m.Directed()
	require.NoError(t, err)

	return g
}

func undirected(t *testing.T, m greedy.Matrix) graph.Graph[int, int] {
	t.Helper()

	g, err := m.Undirected()
	require.NoError(t, err)

	return g
}

// edgeList builds a weighted int graph from (source, target, weight) triples.
// Unlike a matrix it can hold self-loops and weights close to math.MaxInt.
func edgeList(t *testing.T, vertices int, isDirected bool, edges ...[3]int) graph.Graph[int, int] {
	t.Helper()

	traits := []func(*graph.Traits){graph.Weighted()}
	if isDirected {
		traits = append(traits, graph.Directed())
	}

	g := store.New(graph.IntHash, traits...)
	for v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], graph.EdgeWeight(e[2])))
	}

	return g
}
