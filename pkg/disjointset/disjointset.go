// Package disjointset implements a union-find structure with path compression and union by rank.
package disjointset

import (
	"github.com/pkg/errors"
)

var ErrElementNotFound = errors.New("element not found")

// DisjointSet tracks a partition of elements into disjoint sets.
type DisjointSet[K comparable] struct {
	parent map[K]K
	rank   map[K]int
	sets   int
}

// New creates an empty disjoint set.
func New[K comparable]() *DisjointSet[K] {
	return &DisjointSet[K]{
		parent: make(map[K]K),
		rank:   make(map[K]int),
	}
}

// Add places k in its own singleton set. Adding an existing element is a no-op.
func (d *DisjointSet[K]) Add(k K) {
	if _, ok := d.parent[k]; ok {
		return
	}

	d.parent[k] = k
	d.rank[k] = 0
	d.sets++
}

// Find returns the representative of the set containing k.
func (d *DisjointSet[K]) Find(k K) (K, error) {
	if _, ok := d.parent[k]; !ok {
		return k, errors.Wrapf(ErrElementNotFound, "%v", k)
	}

	root := k
	for d.parent[root] != root {
		root = d.parent[root]
	}

	for k != root {
		next := d.parent[k]
		d.parent[k] = root
		k = next
	}

	return root, nil
}

// Union merges the sets containing a and b. It returns false when they already share a set.
func (d *DisjointSet[K]) Union(a, b K) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}

	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	if rootA == rootB {
		return false, nil
	}

	switch {
	case d.rank[rootA] < d.rank[rootB]:
		d.parent[rootA] = rootB
	case d.rank[rootA] > d.rank[rootB]:
		d.parent[rootB] = rootA
	default:
		d.parent[rootB] = rootA
		d.rank[rootA]++
	}

	d.sets--

	return true, nil
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet[K]) Connected(a, b K) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}

	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// Sets returns the number of disjoint sets.
func (d *DisjointSet[K]) Sets() int {
	return d.sets
}
