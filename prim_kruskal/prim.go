package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// Prim computes the Minimum Spanning Tree (MST) of the undirected graph
// described by the symmetric table w, growing the tree from root.
//
// The result is a parent array: parent[root] == -1 and for every other vertex
// v, parent[v] is its neighbour in the tree. total is the tree weight.
//
// Error Conditions:
//   - ErrInvalidGraph : w is not square or not symmetric.
//   - ErrEmptyGraph   : w has no vertices.
//   - ErrBadRoot      : root is outside 0..|V|-1.
//   - ErrDisconnected : some vertex cannot be reached from root.
//   - matrix.ErrWeightOverflow : the tree weight does not fit in int64.
//
// Steps:
//  1. key[v] = cheapest known edge linking v to the tree; key[root] = 0.
//  2. |V| rounds: take the non-tree vertex with the smallest key (lowest index
//     on ties); an infinite key means the graph is disconnected.
//  3. Add it to the tree and lower the keys of its non-tree neighbours.
//
// Complexity: O(V²) time, O(V) memory beyond the input.
func Prim(w [][]int64, root int) ([]int, int64, error) {
	if err := validate(w); err != nil {
		return nil, 0, err
	}
	n := len(w)
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: index %d of %d", ErrBadRoot, root, n)
	}

	key := make([]int64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for v := range key {
		key[v] = matrix.NoEdge
		parent[v] = -1
	}
	key[root] = 0

	var (
		total int64
		err   error
	)
	for round := 0; round < n; round++ {
		// Select the closest non-tree vertex.
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || key[v] < key[u]) {
				u = v
			}
		}
		if key[u] == matrix.NoEdge {
			return nil, 0, fmt.Errorf("%w: vertex %d unreachable from %d", ErrDisconnected, u, root)
		}
		inTree[u] = true
		if u != root {
			if total, err = matrix.SumWeights(total, key[u]); err != nil {
				return nil, 0, fmt.Errorf("Prim: tree weight: %w", err)
			}
		}

		// Lower keys through u.
		for v, wt := range w[u] {
			if v == u || inTree[v] || wt == matrix.NoEdge {
				continue
			}
			if wt < key[v] {
				key[v] = wt
				parent[v] = u
			}
		}
	}

	return parent, total, nil
}
