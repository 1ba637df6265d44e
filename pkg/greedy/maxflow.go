package greedy

import (
	"cmp"
	"math"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-dsa/internal/store"
)

// FlowEdge is an edge of the input network with the flow routed through it.
type FlowEdge[K cmp.Ordered] struct {
	Source   K
	Target   K
	Flow     int
	Capacity int
}

// Saturated reports whether the edge carries its full capacity.
func (e FlowEdge[K]) Saturated() bool {
	return e.Capacity > 0 && e.Flow == e.Capacity
}

// Flow is a maximum flow between Source and Sink.
type Flow[K cmp.Ordered] struct {
	Source        K
	Sink          K
	Value         int
	Augmentations int
	edges         []FlowEdge[K]
	cut           []K
}

// Edges returns every edge of the input network except self-loops, ordered by
// source then target.
func (f *Flow[K]) Edges() []FlowEdge[K] {
	return slices.Clone(f.edges)
}

// EdgeFlow returns the flow routed from u to v.
func (f *Flow[K]) EdgeFlow(u, v K) (int, error) {
	idx, found := slices.BinarySearchFunc(f.edges, [2]K{u, v}, func(e FlowEdge[K], key [2]K) int {
		if c := cmp.Compare(e.Source, key[0]); c != 0 {
			return c
		}
		return cmp.Compare(e.Target, key[1])
	})
	if !found {
		return 0, errors.Wrapf(graph.ErrEdgeNotFound, "%v -> %v", u, v)
	}

	return f.edges[idx].Flow, nil
}

// MinCut returns the source side of a minimum cut: every vertex still reachable
// from the source in the final residual network.
func (f *Flow[K]) MinCut() []K {
	return slices.Clone(f.cut)
}

// MaxFlow computes the maximum flow from source to sink of a directed graph whose
// edge weights are capacities. Augmenting paths are found with a breadth-first
// search of the residual network (Edmonds-Karp), visiting neighbours in ascending order.
func MaxFlow[K cmp.Ordered, T any](g graph.Graph[K, T], source, sink K) (*Flow[K], error) {
	if !g.Traits().IsDirected {
		return nil, ErrUndirectedGraph
	}

	if source == sink {
		return nil, errors.Wrapf(ErrSameSourceSink, "%v", source)
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, errors.Wrap(err, "unable to get adjacency map")
	}

	for _, v := range []K{source, sink} {
		if _, ok := adjacency[v]; !ok {
			return nil, errors.Wrapf(graph.ErrVertexNotFound, "vertex %v", v)
		}
	}

	weighted := g.Traits().IsWeighted
	if err := checkNonNegative(weighted, adjacency); err != nil {
		return nil, err
	}

	res, err := newResidual(adjacency, weighted)
	if err != nil {
		return nil, err
	}

	flow := &Flow[K]{Source: source, Sink: sink}

	for {
		parent, found, err := res.augmentingPath(source, sink)
		if err != nil {
			return nil, err
		}

		if !found {
			break
		}

		pathFlow := math.MaxInt
		for v := sink; v != source; v = parent[v] {
			c, err := res.capacity(parent[v], v)
			if err != nil {
				return nil, err
			}
			pathFlow = min(pathFlow, c)
		}

		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			if err := res.add(u, v, -pathFlow); err != nil {
				return nil, err
			}
			if err := res.add(v, u, pathFlow); err != nil {
				return nil, err
			}
		}

		value, ok := addWeights(flow.Value, pathFlow)
		if !ok {
			return nil, errors.Wrapf(ErrOverflow, "flow from %v to %v", source, sink)
		}

		flow.Value = value
		flow.Augmentations++
	}

	flow.cut, err = res.reachable(source)
	if err != nil {
		return nil, err
	}

	for _, u := range sortedKeys(adjacency) {
		for _, v := range sortedKeys(adjacency[u]) {
			if u == v {
				continue
			}

			capacity := edgeWeight(weighted, adjacency[u][v])

			left, err := res.capacity(u, v)
			if err != nil {
				return nil, err
			}

			flow.edges = append(flow.edges, FlowEdge[K]{
				Source:   u,
				Target:   v,
				Flow:     max(0, capacity-left),
				Capacity: capacity,
			})
		}
	}

	return flow, nil
}

// residual is the residual network, kept in an ordered store so that the
// breadth-first search visits neighbours deterministically.
type residual[K cmp.Ordered] struct {
	store store.OrderedStore[K, K]
}

func newResidual[K cmp.Ordered](adjacency map[K]map[K]graph.Edge[K], weighted bool) (*residual[K], error) {
	res := &residual[K]{store: store.NewMemoryStore[K, K]()}

	for v := range adjacency {
		if err := res.store.AddVertex(v, v, graph.VertexProperties{}); err != nil {
			return nil, errors.Wrapf(err, "unable to add residual vertex %v", v)
		}
	}

	for u, targets := range adjacency {
		for v, edge := range targets {
			if u == v {
				continue
			}
			if err := res.add(u, v, edgeWeight(weighted, edge)); err != nil {
				return nil, err
			}
			if err := res.add(v, u, 0); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

func (r *residual[K]) capacity(u, v K) (int, error) {
	edge, err := r.store.Edge(u, v)
	if errors.Is(err, graph.ErrEdgeNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "unable to get residual edge %v -> %v", u, v)
	}

	return edge.Properties.Weight, nil
}

// add changes the residual capacity of u -> v by delta, creating the edge if needed.
func (r *residual[K]) add(u, v K, delta int) error {
	edge, err := r.store.Edge(u, v)
	if errors.Is(err, graph.ErrEdgeNotFound) {
		edge = graph.Edge[K]{Source: u, Target: v}
		edge.Properties.Weight = delta
		return errors.Wrapf(r.store.AddEdge(u, v, edge), "unable to add residual edge %v -> %v", u, v)
	}
	if err != nil {
		return errors.Wrapf(err, "unable to get residual edge %v -> %v", u, v)
	}

	if delta > 0 {
		weight, ok := addWeights(edge.Properties.Weight, delta)
		if !ok {
			return errors.Wrapf(ErrOverflow, "residual edge %v -> %v", u, v)
		}
		edge.Properties.Weight = weight
	} else {
		edge.Properties.Weight += delta
	}

	return errors.Wrapf(r.store.UpdateEdge(u, v, edge), "unable to update residual edge %v -> %v", u, v)
}

func (r *residual[K]) augmentingPath(source, sink K) (map[K]K, bool, error) {
	parent := make(map[K]K)
	visited := map[K]struct{}{source: {}}
	queue := []K{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		next, err := r.store.Successors(u)
		if err != nil {
			return nil, false, errors.Wrap(err, "unable to walk residual network")
		}

		for _, v := range next {
			if _, ok := visited[v]; ok {
				continue
			}

			c, err := r.capacity(u, v)
			if err != nil {
				return nil, false, err
			}
			if c <= 0 {
				continue
			}

			parent[v] = u
			visited[v] = struct{}{}

			if v == sink {
				return parent, true, nil
			}

			queue = append(queue, v)
		}
	}

	return parent, false, nil
}

func (r *residual[K]) reachable(source K) ([]K, error) {
	visited := map[K]struct{}{source: {}}
	queue := []K{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		next, err := r.store.Successors(u)
		if err != nil {
			return nil, errors.Wrap(err, "unable to walk residual network")
		}

		for _, v := range next {
			if _, ok := visited[v]; ok {
				continue
			}

			c, err := r.capacity(u, v)
			if err != nil {
				return nil, err
			}
			if c > 0 {
				visited[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return sortedKeys(visited), nil
}
