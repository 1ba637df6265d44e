package greedy

import (
	"cmp"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

func edgeWeight[K comparable](weighted bool, edge graph.Edge[K]) int {
	if !weighted {
		return 1
	}

	return edge.Properties.Weight
}

// addWeights adds two non-negative weights. The boolean is false when the sum
// does not fit below Infinity.
func addWeights(a, b int) (int, bool) {
	if b > Infinity-1-a {
		return 0, false
	}

	return a + b, true
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func checkNonNegative[K cmp.Ordered](weighted bool, adjacency map[K]map[K]graph.Edge[K]) error {
	for _, source := range sortedKeys(adjacency) {
		for _, target := range sortedKeys(adjacency[source]) {
			if w := edgeWeight(weighted, adjacency[source][target]); w < 0 {
				return errors.Wrapf(ErrNegativeWeight, "edge %v -> %v has weight %d", source, target, w)
			}
		}
	}

	return nil
}
