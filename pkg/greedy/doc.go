// Package greedy implements the classic greedy graph and coding algorithms on top of
// github.com/dominikbraun/graph.
//
// Every algorithm takes a graph.Graph whose vertex hashes are ordered. The ordering is only
// used to break ties, so results are reproducible from one run to the next even though the
// underlying adjacency maps are not ordered. Edge weights are read from the edge properties;
// graphs without the Weighted trait use a weight of 1 for every edge.
//
// The package covers:
//
//   - Dijkstra single-source shortest paths (non-negative weights).
//   - Kruskal minimum spanning tree (or forest for disconnected graphs).
//   - Ford-Fulkerson maximum flow with breadth-first augmenting paths (Edmonds-Karp).
//   - Huffman prefix codes, with encoding and decoding helpers.
//
// Adjacency matrices in the "V followed by V*V integers" text format can be parsed with
// ParseMatrix and turned into graphs with Matrix.Directed or Matrix.Undirected.
package greedy
