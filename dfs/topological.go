// Package dfs provides ordering algorithms on directed weight tables,
// including topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every edge u→v, u appears before v in the ordering.
// If the table contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V²) (each row scanned once)
//   - Memory: O(V)  (recursion stack and state slice)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	w     [][]int64 // the table being sorted
	state []int     // visitation state: White, Gray, Black
	order []int     // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in w,
// reading every non-sentinel off-diagonal cell as a directed edge.
// Ties are broken by ascending index. A self-loop counts as a cycle.
// Returns ErrEmptyGraph for a 0×0 table and ErrCycleDetected on a cycle.
func TopologicalSort(w [][]int64) ([]int, error) {
	// 1. Validate table
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w", err)
	}
	n := len(w)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	// 2. Initialize sorter state
	sorter := &topoSorter{
		w:     w,
		state: make([]int, n), // all vertices start as White (0)
		order: make([]int, 0, n),
	}
	// 3. Drive DFS from every unvisited vertex, highest index first so that
	//    the reversed post-order prefers low indices.
	for v := n - 1; v >= 0; v-- {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id int) error {
	// 1. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return fmt.Errorf("%w: back-edge into %d", ErrCycleDetected, id)
	}
	// 2. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 3. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 4. Explore outgoing edges, highest index first (mirrors the root loop)
	row := t.w[id]
	for to := len(row) - 1; to >= 0; to-- {
		if row[to] == matrix.NoEdge {
			continue
		}
		if err := t.visit(to); err != nil {
			return err
		}
	}

	// 5. Mark as fully explored (Black) and record in post-order list
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
