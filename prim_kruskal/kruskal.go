package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mgraph/disjointset"
	"github.com/katalvlaran/mgraph/matrix"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the undirected graph
// described by the symmetric table w. The tree is returned as a table of the
// same size holding only the selected edges (mirrored); every other cell is
// matrix.NoEdge.
//
// Error Conditions:
//   - ErrInvalidGraph : w is not square or not symmetric.
//   - ErrEmptyGraph   : w has no vertices.
//   - ErrDisconnected : fewer than |V|-1 edges could be selected.
//   - matrix.ErrWeightOverflow : the tree weight does not fit in int64.
//
// Steps:
//  1. Validate w; a single vertex yields an empty tree with weight 0.
//  2. Collect each undirected edge once (i < j, row-major), skipping self-loops.
//  3. Stable-sort by weight so equal weights keep row-major order.
//  4. Scan edges, uniting endpoints from different components; stop at |V|-1 edges.
//
// Complexity: O(V² + E log E). Memory: O(V² + E).
func Kruskal(w [][]int64) ([][]int64, int64, error) {
	if err := validate(w); err != nil {
		return nil, 0, err
	}

	n := len(w)
	tree := matrix.NewTable(n)
	var (
		total  int64
		sumErr error
	)
	picked := 0
	kruskal(w, func(e matrix.Edge) bool {
		tree[e.From][e.To] = e.Weight
		tree[e.To][e.From] = e.Weight
		if total, sumErr = matrix.SumWeights(total, e.Weight); sumErr != nil {
			return false
		}
		picked++

		return picked < n-1
	})

	if sumErr != nil {
		return nil, 0, fmt.Errorf("Kruskal: tree weight: %w", sumErr)
	}
	if picked < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// KruskalSet runs the same edge scan as Kruskal but returns the final
// union-find state instead of the tree. A disconnected graph is not an error:
// the set then holds one component per connected piece.
func KruskalSet(w [][]int64) (*disjointset.DisjointSet, error) {
	if err := validate(w); err != nil {
		return nil, err
	}

	return kruskal(w, nil), nil
}

// kruskal performs the sorted edge scan. accept is called for every edge
// that joins two components; it returns false to stop early.
func kruskal(w [][]int64, accept func(matrix.Edge) bool) *disjointset.DisjointSet {
	ds := disjointset.New(len(w))

	edges := matrix.Edges(w, true)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	for _, e := range edges {
		// Indices come from w itself, so Union cannot fail.
		merged, _ := ds.Union(e.From, e.To)
		if !merged {
			continue
		}
		if accept != nil && !accept(e) {
			break
		}
		if ds.Count() == 1 {
			break
		}
	}

	return ds
}
