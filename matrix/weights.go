// SPDX-License-Identifier: MIT
// Package matrix: helpers over raw [][]int64 weight tables.
//
// Kernels in bfs, dfs, dijkstra and prim_kruskal receive the n×n table that
// AdjacencyMatrix.View returns. These helpers validate its shape and perform
// sentinel-aware arithmetic so "infinity + x" never wraps around.

package matrix

import (
	"fmt"
	"math"
)

// Edge is one non-sentinel, off-diagonal cell of a weight table.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// ValidateSquare checks that every row of w has len(w) columns.
// An empty table is square.
func ValidateSquare(w [][]int64) error {
	n := len(w)
	for i, row := range w {
		if len(row) != n {
			return fmt.Errorf("ValidateSquare: row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	return nil
}

// ValidateSymmetric checks that w is square and w[i][j] == w[j][i] for all pairs.
func ValidateSymmetric(w [][]int64) error {
	if err := ValidateSquare(w); err != nil {
		return err
	}
	for i := range w {
		for j := i + 1; j < len(w); j++ {
			if w[i][j] != w[j][i] {
				return fmt.Errorf("ValidateSymmetric: w[%d][%d]=%d, w[%d][%d]=%d: %w",
					i, j, w[i][j], j, i, w[j][i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// AddWeights returns a+b treating NoEdge as +∞. The sum saturates at NoEdge
// instead of overflowing and at math.MinInt64 instead of underflowing.
func AddWeights(a, b int64) int64 {
	if a == NoEdge || b == NoEdge {
		return NoEdge
	}
	if b > 0 && a > NoEdge-b {
		return NoEdge
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}

	return a + b
}

// SumWeights returns a+b for two finite weights, or ErrWeightOverflow when
// the exact sum does not fit in (math.MinInt64, NoEdge). NoEdge operands are
// rejected with ErrInvalidWeight; callers skip absent edges first.
func SumWeights(a, b int64) (int64, error) {
	if a == NoEdge || b == NoEdge {
		return 0, fmt.Errorf("SumWeights(%d,%d): %w", a, b, ErrInvalidWeight)
	}
	if (b > 0 && a >= NoEdge-b) || (b < 0 && a <= math.MinInt64-b) {
		return 0, fmt.Errorf("SumWeights(%d,%d): %w", a, b, ErrWeightOverflow)
	}

	return a + b, nil
}

// Edges lists the edges of w in row-major order, skipping the diagonal.
// When undirected is true only cells with i < j are reported, so each
// mirrored pair appears once.
func Edges(w [][]int64, undirected bool) []Edge {
	var out []Edge
	for i, row := range w {
		j := 0
		if undirected {
			j = i + 1
		}
		for ; j < len(row); j++ {
			if i == j || row[j] == NoEdge {
				continue
			}
			out = append(out, Edge{From: i, To: j, Weight: row[j]})
		}
	}

	return out
}

// NewTable allocates an n×n table filled with NoEdge.
func NewTable(n int) [][]int64 {
	data := make([]int64, n*n)
	for i := range data {
		data[i] = NoEdge
	}
	out := make([][]int64, n)
	for i := range out {
		out[i] = data[i*n : (i+1)*n : (i+1)*n]
	}

	return out
}

// CloneTable returns a deep copy of w in a fresh contiguous buffer.
func CloneTable(w [][]int64) [][]int64 {
	out := NewTable(len(w))
	for i, row := range w {
		copy(out[i], row)
	}

	return out
}
