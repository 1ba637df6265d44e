package greedy

import (
	"cmp"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/askiada/go-dsa/internal/store"
	"github.com/askiada/go-dsa/pkg/disjointset"
)

// WeightedEdge is an undirected edge with Source <= Target.
type WeightedEdge[K cmp.Ordered] struct {
	Source K
	Target K
	Weight int
}

// SpanningTree is a minimum spanning tree, or a minimum spanning forest when
// the input graph is not connected.
type SpanningTree[K cmp.Ordered] struct {
	Vertices   []K
	Edges      []WeightedEdge[K]
	Weight     int
	Components int
}

// Connected reports whether the tree spans every vertex.
func (t *SpanningTree[K]) Connected() bool {
	return t.Components <= 1
}

// Graph returns the tree as an undirected weighted graph.
func (t *SpanningTree[K]) Graph() (graph.Graph[K, K], error) {
	g := store.New(func(k K) K { return k }, graph.Weighted())

	for _, v := range t.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, errors.Wrapf(err, "unable to add vertex %v", v)
		}
	}

	for _, e := range t.Edges {
		if err := g.AddEdge(e.Source, e.Target, graph.EdgeWeight(e.Weight)); err != nil {
			return nil, errors.Wrapf(err, "unable to add edge %v -- %v", e.Source, e.Target)
		}
	}

	return g, nil
}

// Kruskal computes a minimum spanning tree of an undirected graph. Edges are
// considered by increasing weight, then by endpoints, and an edge is kept when
// it joins two different components.
func Kruskal[K cmp.Ordered, T any](g graph.Graph[K, T]) (*SpanningTree[K], error) {
	if g.Traits().IsDirected {
		return nil, ErrDirectedGraph
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, errors.Wrap(err, "unable to get adjacency map")
	}

	if len(adjacency) == 0 {
		return nil, ErrEmptyGraph
	}

	weighted := g.Traits().IsWeighted
	edges := lo.FlatMap(sortedKeys(adjacency), func(source K, _ int) []WeightedEdge[K] {
		targets := lo.Filter(sortedKeys(adjacency[source]), func(target K, _ int) bool {
			return source < target
		})
		return lo.Map(targets, func(target K, _ int) WeightedEdge[K] {
			return WeightedEdge[K]{Source: source, Target: target, Weight: edgeWeight(weighted, adjacency[source][target])}
		})
	})

	slices.SortFunc(edges, func(a, b WeightedEdge[K]) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})

	tree := &SpanningTree[K]{
		Vertices: sortedKeys(adjacency),
		Edges:    make([]WeightedEdge[K], 0, len(adjacency)-1),
	}

	components := disjointset.New[K]()
	for _, v := range tree.Vertices {
		components.Add(v)
	}

	for _, e := range edges {
		merged, err := components.Union(e.Source, e.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to merge %v and %v", e.Source, e.Target)
		}

		if !merged {
			continue
		}

		weight, ok := addWeights(tree.Weight, e.Weight)
		if !ok {
			return nil, errors.Wrapf(ErrOverflow, "adding edge %v -- %v", e.Source, e.Target)
		}

		tree.Edges = append(tree.Edges, e)
		tree.Weight = weight

		if len(tree.Edges) == len(tree.Vertices)-1 {
			break
		}
	}

	tree.Components = components.Sets()

	return tree, nil
}
