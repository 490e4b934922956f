// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) over a raw weight table with deterministic loop order.
//   - Next-hop tracking so path rendering and path cost come from one computation.
//
// Contract:
//   - Square table; NoEdge means "no path"; the input is never modified.
//   - Diagonal distances start at 0; a negative self-loop is a negative cycle.
//   - A finite sum that would reach NoEdge is ErrWeightOverflow, never "no path".

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opAllPairs      = "AllPairs"
	opPath          = "Path"
	opCost          = "Cost"
)

// noHop marks an absent next hop.
const noHop = -1

// ShortestPaths holds the result of an all-pairs computation.
// Dist[i][j] is the shortest distance i→j (NoEdge if unreachable).
// next[i][j] is the vertex following i on one shortest path to j.
type ShortestPaths struct {
	Dist [][]int64
	next [][]int
}

// FloydWarshall returns the all-pairs shortest distance table of w.
//
// Contract:
//   - w must be square (ErrNonSquare) and non-empty (ErrEmptyMatrix).
//   - NoEdge denotes "no edge"; it stays NoEdge in the result when unreachable.
//   - A negative cycle, including a negative self-loop, yields ErrNegativeCycle.
//   - A finite path sum outside the int64 range yields ErrWeightOverflow.
//
// Complexity: Time O(n³), Space O(n²).
func FloydWarshall(w [][]int64) ([][]int64, error) {
	sp, err := allPairs(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	return sp.Dist, nil
}

// AllPairs runs Floyd–Warshall on w and keeps the next-hop table for path
// reconstruction. Errors match FloydWarshall.
func AllPairs(w [][]int64) (*ShortestPaths, error) {
	sp, err := allPairs(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAllPairs, err)
	}

	return sp, nil
}

func allPairs(w [][]int64) (*ShortestPaths, error) {
	if err := ValidateSquare(w); err != nil {
		return nil, err
	}
	n := len(w)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	// Seed distances and next hops from direct edges.
	dist := CloneTable(w)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, fmt.Errorf("vertex %d: self-loop %d: %w", i, dist[i][i], ErrNegativeCycle)
		}
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				next[i][j] = j
			case dist[i][j] != NoEdge:
				next[i][j] = j
			default:
				next[i][j] = noHop
			}
		}
		dist[i][i] = 0
	}

	var (
		k, i, j  int
		ik, cand int64
		err      error
	)
	// Fixed k → i → j order; strict improvement only.
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = dist[i][k]
			if ik == NoEdge {
				continue
			}
			for j = 0; j < n; j++ {
				if dist[k][j] == NoEdge {
					continue
				}
				if cand, err = SumWeights(ik, dist[k][j]); err != nil {
					return nil, fmt.Errorf("via %d from %d to %d: %w", k, i, j, err)
				}
				if cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
				// Stop at the first negative cycle, before it compounds.
				if i == j && cand < 0 {
					return nil, fmt.Errorf("vertex %d: %w", i, ErrNegativeCycle)
				}
			}
		}
	}

	return &ShortestPaths{Dist: dist, next: next}, nil
}

// Len returns the number of vertices covered by sp.
func (sp *ShortestPaths) Len() int { return len(sp.Dist) }

// Path returns the vertex indices of one shortest path from start to end,
// inclusive of both. Path(i, i) is [i].
func (sp *ShortestPaths) Path(start, end int) ([]int, error) {
	if err := sp.check(opPath, start, end); err != nil {
		return nil, err
	}
	if sp.next[start][end] == noHop {
		return nil, fmt.Errorf("%s(%d,%d): %w", opPath, start, end, ErrNoPath)
	}

	path := []int{start}
	for cur := start; cur != end; {
		cur = sp.next[cur][end]
		path = append(path, cur)
	}

	return path, nil
}

// Cost returns the total weight of the path Path(start, end) reports.
func (sp *ShortestPaths) Cost(start, end int) (int64, error) {
	if err := sp.check(opCost, start, end); err != nil {
		return 0, err
	}
	if sp.next[start][end] == noHop {
		return 0, fmt.Errorf("%s(%d,%d): %w", opCost, start, end, ErrNoPath)
	}

	return sp.Dist[start][end], nil
}

func (sp *ShortestPaths) check(op string, start, end int) error {
	n := len(sp.Dist)
	if start < 0 || start >= n || end < 0 || end >= n {
		return fmt.Errorf("%s(%d,%d): %d vertices: %w", op, start, end, n, ErrOutOfRange)
	}

	return nil
}
