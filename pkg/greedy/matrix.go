package greedy

import (
	"bufio"
	"io"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-dsa/internal/store"
)

// Matrix is an adjacency matrix. Entry [u][v] is the weight (or capacity) of the edge u -> v;
// zero means there is no edge. The diagonal is ignored.
type Matrix [][]int

// ParseMatrix reads a vertex count V followed by V*V whitespace separated integers.
func ParseMatrix(r io.Reader) (Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, errors.Wrapf(err, "unable to read %s", what)
			}
			return 0, errors.Wrapf(io.ErrUnexpectedEOF, "unable to read %s", what)
		}

		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, errors.Wrapf(err, "unable to parse %s", what)
		}

		return v, nil
	}

	size, err := next("vertex count")
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		return nil, errors.Wrapf(ErrEmptyGraph, "vertex count %d", size)
	}

	m := make(Matrix, size)
	for i := range m {
		m[i] = make([]int, size)
		for j := range m[i] {
			m[i][j], err = next("entry [" + strconv.Itoa(i) + "][" + strconv.Itoa(j) + "]")
			if err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Validate checks that m is a non-empty square matrix with no negative entries.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return ErrEmptyGraph
	}

	for i, row := range m {
		if len(row) != len(m) {
			return errors.Wrapf(ErrNotSquare, "row %d has %d columns, expected %d", i, len(row), len(m))
		}

		for j, w := range row {
			if w < 0 {
				return errors.Wrapf(ErrNegativeWeight, "entry [%d][%d] is %d", i, j, w)
			}
		}
	}

	return nil
}

// Symmetric reports whether m[i][j] == m[j][i] for every i, j.
func (m Matrix) Symmetric() bool {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}

	return true
}

// Directed builds a weighted directed graph with one vertex per row.
func (m Matrix) Directed() (graph.Graph[int, int], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := store.New(graph.IntHash, graph.Directed(), graph.Weighted())
	if err := m.addVertices(g); err != nil {
		return nil, err
	}

	for u, row := range m {
		for v, w := range row {
			if u == v || w <= 0 {
				continue
			}

			if err := g.AddEdge(u, v, graph.EdgeWeight(w)); err != nil {
				return nil, errors.Wrapf(err, "unable to add edge %d -> %d", u, v)
			}
		}
	}

	return g, nil
}

// Undirected builds a weighted undirected graph. The matrix must be symmetric.
func (m Matrix) Undirected() (graph.Graph[int, int], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if !m.Symmetric() {
		return nil, ErrNotSymmetric
	}

	g := store.New(graph.IntHash, graph.Weighted())
	if err := m.addVertices(g); err != nil {
		return nil, err
	}

	for u, row := range m {
		for v := u + 1; v < len(row); v++ {
			if row[v] <= 0 {
				continue
			}

			if err := g.AddEdge(u, v, graph.EdgeWeight(row[v])); err != nil {
				return nil, errors.Wrapf(err, "unable to add edge %d -- %d", u, v)
			}
		}
	}

	return g, nil
}

func (m Matrix) addVertices(g graph.Graph[int, int]) error {
	for v := range m {
		if err := g.AddVertex(v); err != nil {
			return errors.Wrapf(err, "unable to add vertex %d", v)
		}
	}

	return nil
}
