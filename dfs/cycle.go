// Package dfs implements cycle detection for directed and undirected weight tables.
//
// Directed tables use three-color marking: reaching a Gray vertex is a
// back-edge. Undirected tables ignore the edge leading back to the DFS parent,
// so a single mirrored edge is not a cycle. Self-loops always count.
//
// Complexity:
//
//   - Time:   O(V²)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// HasCycle reports whether w contains a cycle. When undirected is true, w is
// treated as symmetric and each mirrored pair counts as one edge.
func HasCycle(w [][]int64, undirected bool) (bool, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return false, fmt.Errorf("dfs: HasCycle: %w", err)
	}
	n := len(w)
	state := make([]int, n)
	for v := 0; v < n; v++ {
		if state[v] != White {
			continue
		}
		if cycleFrom(w, v, -1, undirected, state) {
			return true, nil
		}
	}

	return false, nil
}

// cycleFrom explores from id and reports the first cycle it closes.
func cycleFrom(w [][]int64, id, parent int, undirected bool, state []int) bool {
	state[id] = Gray
	for to, weight := range w[id] {
		if weight == matrix.NoEdge {
			continue
		}
		if to == id {
			return true // self-loop
		}
		if undirected && to == parent {
			continue
		}
		switch state[to] {
		case Gray:
			return true
		case Black:
			// Fully explored; any cycle through it was already reported.
			continue
		}
		if cycleFrom(w, to, id, undirected, state) {
			return true
		}
	}
	state[id] = Black

	return false
}
