// Package prim_kruskal computes Minimum Spanning Trees (MST) on an undirected
// weight table: Kruskal's algorithm and Prim's algorithm.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V with the minimum total weight.
//   - Typical uses: cost-efficient network design, single-linkage clustering (cut the heaviest
//     tree edges), and as a subroutine of approximation algorithms.
//
// Input
//
//   - A square [][]int64 table in which matrix.NoEdge marks a missing edge. The table must be
//     symmetric (w[i][j] == w[j][i]); anything else is rejected with ErrInvalidGraph.
//   - Self-loops (the diagonal) never take part in a tree.
//   - Negative and zero weights are ordinary weights.
//
// Algorithms Provided
//
//   - Kruskal(w) ([][]int64, int64, error)
//     Strategy: list each edge once (i < j), stable-sort by weight, and merge components
//     with a disjointset.DisjointSet, skipping edges whose endpoints are already connected.
//     Returns the tree as a mirrored table. Complexity: O(V² + E log E).
//
//   - KruskalSet(w) (*disjointset.DisjointSet, error)
//     Same scan; returns the final union-find state. Works on disconnected graphs, where
//     it describes the spanning forest's components.
//
//   - Prim(w, root) ([]int, int64, error)
//     Strategy: grow a single tree from root, each round adding the closest outside vertex
//     found by a linear scan. Returns a parent array. Complexity: O(V²), which suits dense
//     tables better than a heap.
//
//   - Compute(w, MSTOptions) dispatches to either algorithm and returns an edge list.
//
// Determinism
//
//   - Kruskal breaks weight ties by row-major edge order.
//   - Prim breaks key ties by the lowest vertex index.
//   - The total weight is unique even when several trees are minimal, so both algorithms
//     always agree on it.
//
// Errors
//
//   - ErrInvalidGraph, ErrEmptyGraph, ErrDisconnected, ErrBadRoot, ErrUnknownMethod.
//
// Example
//
//	const x = matrix.NoEdge
//	w := [][]int64{
//		{x, 2, 10},
//		{2, x, 3},
//		{10, 3, x},
//	}
//	_, total, _ := prim_kruskal.Kruskal(w) // total == 5
//	parent, _, _ := prim_kruskal.Prim(w, 0) // parent == [-1 0 1]
package prim_kruskal
