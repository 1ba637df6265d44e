package greedy

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-dsa/pkg/heap"
)

// Infinity is the distance of a vertex that cannot be reached from the source.
const Infinity = math.MaxInt

// ShortestPaths holds the result of a single-source shortest path search.
type ShortestPaths[K cmp.Ordered] struct {
	Source   K
	vertices []K
	dist     map[K]int
	prev     map[K]K
}

type distanceItem[K cmp.Ordered] struct {
	vertex K
	dist   int
}

// Dijkstra computes the shortest distance from source to every vertex of g.
// Edge weights must not be negative. Among candidates at equal distance the
// smallest vertex hash is settled first. A path whose length would not fit
// below Infinity is not followed.
func Dijkstra[K cmp.Ordered, T any](g graph.Graph[K, T], source K) (*ShortestPaths[K], error) {
	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, errors.Wrap(err, "unable to get adjacency map")
	}

	if _, ok := adjacency[source]; !ok {
		return nil, errors.Wrapf(graph.ErrVertexNotFound, "source %v", source)
	}

	weighted := g.Traits().IsWeighted
	if err := checkNonNegative(weighted, adjacency); err != nil {
		return nil, err
	}

	sp := &ShortestPaths[K]{
		Source:   source,
		vertices: sortedKeys(adjacency),
		dist:     make(map[K]int, len(adjacency)),
		prev:     make(map[K]K),
	}

	for v := range adjacency {
		sp.dist[v] = Infinity
	}
	sp.dist[source] = 0

	queue := heap.New(func(a, b distanceItem[K]) bool {
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.vertex < b.vertex
	})
	queue.Push(distanceItem[K]{vertex: source})

	visited := make(map[K]struct{}, len(adjacency))

	for queue.Len() > 0 {
		item, _ := queue.Pop()
		u := item.vertex

		if _, ok := visited[u]; ok {
			continue
		}
		visited[u] = struct{}{}

		for _, v := range sortedKeys(adjacency[u]) {
			if _, ok := visited[v]; ok {
				continue
			}

			candidate, ok := addWeights(sp.dist[u], edgeWeight(weighted, adjacency[u][v]))
			if ok && candidate < sp.dist[v] {
				sp.dist[v] = candidate
				sp.prev[v] = u
				queue.Push(distanceItem[K]{vertex: v, dist: candidate})
			}
		}
	}

	return sp, nil
}

// Vertices returns every vertex of the searched graph in ascending order.
func (sp *ShortestPaths[K]) Vertices() []K {
	return slices.Clone(sp.vertices)
}

// Distance returns the distance from the source to v. The boolean is false when
// v is unknown or unreachable, in which case the distance is Infinity.
func (sp *ShortestPaths[K]) Distance(v K) (int, bool) {
	d, ok := sp.dist[v]
	if !ok {
		return Infinity, false
	}

	return d, d != Infinity
}

// Path returns the vertices of a shortest path from the source to v, both included.
func (sp *ShortestPaths[K]) Path(v K) ([]K, error) {
	d, ok := sp.dist[v]
	if !ok {
		return nil, errors.Wrapf(graph.ErrVertexNotFound, "target %v", v)
	}

	if d == Infinity {
		return nil, errors.Wrapf(ErrUnreachable, "target %v from %v", v, sp.Source)
	}

	path := []K{v}
	for v != sp.Source {
		v = sp.prev[v]
		path = append(path, v)
	}

	slices.Reverse(path)

	return path, nil
}

// Tree returns the predecessor of every reachable vertex other than the source.
func (sp *ShortestPaths[K]) Tree() map[K]K {
	return maps.Clone(sp.prev)
}
