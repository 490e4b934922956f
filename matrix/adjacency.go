// SPDX-License-Identifier: MIT
// Package matrix: fixed-capacity adjacency matrix with an out-of-band sentinel.
//
// Contract:
//   - Every cell is initialized to NoEdge at construction; zero is a valid weight.
//   - Rows share one row-major backing array; Rows() exposes them live.
//   - Undirected matrices mirror every Set/Clear so w[i][j] == w[j][i] always holds.

package matrix

import (
	"fmt"
	"math"
)

// NoEdge marks the absence of an edge. It is distinct from every weight a
// caller may store and from the zero value Go uses to fill new slices.
const NoEdge int64 = math.MaxInt64

const (
	// MaxCapacity bounds NewAdjacencyMatrix; the matrix holds capacity² cells.
	MaxCapacity = 1 << 12

	// MaxWeight bounds the magnitude of a stored weight. A simple path has at
	// most MaxCapacity-1 edges, so no path sum over stored weights overflows.
	MaxWeight int64 = math.MaxInt64 / MaxCapacity
)

// Operation names for error context.
const (
	opNew   = "NewAdjacencyMatrix"
	opAt    = "At"
	opSet   = "Set"
	opClear = "Clear"
	opView  = "View"
)

// AdjacencyMatrix is a capacity×capacity table of directed edge weights.
// Entry [i][j] is the weight of i→j, or NoEdge.
type AdjacencyMatrix struct {
	capacity int
	directed bool
	data     []int64   // flat row-major buffer, len = capacity²
	rows     [][]int64 // rows[i] aliases data[i*capacity:(i+1)*capacity]
}

// NewAdjacencyMatrix allocates a matrix of the given capacity with every
// cell set to NoEdge. Returns ErrBadShape unless 0 < capacity <= MaxCapacity.
// Complexity: O(capacity²).
func NewAdjacencyMatrix(capacity int, directed bool) (*AdjacencyMatrix, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%s: capacity=%d not in [1,%d]: %w", opNew, capacity, MaxCapacity, ErrBadShape)
	}

	data := make([]int64, capacity*capacity)
	for i := range data {
		data[i] = NoEdge
	}
	rows := make([][]int64, capacity)
	for i := range rows {
		rows[i] = data[i*capacity : (i+1)*capacity : (i+1)*capacity]
	}

	return &AdjacencyMatrix{
		capacity: capacity,
		directed: directed,
		data:     data,
		rows:     rows,
	}, nil
}

// Cap returns the fixed number of rows (and columns).
func (m *AdjacencyMatrix) Cap() int { return m.capacity }

// Directed reports whether Set and Clear skip mirroring.
func (m *AdjacencyMatrix) Directed() bool { return m.directed }

// At returns the weight stored at [i][j].
func (m *AdjacencyMatrix) At(i, j int) (int64, error) {
	if err := m.checkPair(opAt, i, j); err != nil {
		return 0, err
	}

	return m.rows[i][j], nil
}

// HasEdge reports whether [i][j] holds a weight other than NoEdge.
func (m *AdjacencyMatrix) HasEdge(i, j int) (bool, error) {
	w, err := m.At(i, j)
	if err != nil {
		return false, err
	}

	return w != NoEdge, nil
}

// Set stores weight w at [i][j], and at [j][i] for undirected matrices.
// Weights outside [-MaxWeight, MaxWeight] are rejected with ErrInvalidWeight;
// that includes NoEdge, so use Clear to remove an edge.
func (m *AdjacencyMatrix) Set(i, j int, w int64) error {
	if err := m.checkPair(opSet, i, j); err != nil {
		return err
	}
	if w == NoEdge {
		return fmt.Errorf("%s(%d,%d): weight equals NoEdge: %w", opSet, i, j, ErrInvalidWeight)
	}
	if w > MaxWeight || w < -MaxWeight {
		return fmt.Errorf("%s(%d,%d): |%d| > MaxWeight: %w", opSet, i, j, w, ErrInvalidWeight)
	}
	m.rows[i][j] = w
	if !m.directed {
		m.rows[j][i] = w
	}

	return nil
}

// Clear resets [i][j] (and the mirror for undirected matrices) to NoEdge.
func (m *AdjacencyMatrix) Clear(i, j int) error {
	if err := m.checkPair(opClear, i, j); err != nil {
		return err
	}
	m.rows[i][j] = NoEdge
	if !m.directed {
		m.rows[j][i] = NoEdge
	}

	return nil
}

// Rows returns the live rows of the full matrix. Writes through the returned
// slices are visible to m and bypass mirroring.
func (m *AdjacencyMatrix) Rows() [][]int64 { return m.rows }

// View returns the live top-left n×n region, the form algorithm kernels take.
// Only the n row headers are allocated; cells are shared with m.
func (m *AdjacencyMatrix) View(n int) ([][]int64, error) {
	if n < 0 || n > m.capacity {
		return nil, fmt.Errorf("%s: n=%d not in [0,%d]: %w", opView, n, m.capacity, ErrOutOfRange)
	}
	view := make([][]int64, n)
	for i := 0; i < n; i++ {
		view[i] = m.rows[i][:n:n]
	}

	return view, nil
}

// Clone returns a deep copy of m.
func (m *AdjacencyMatrix) Clone() *AdjacencyMatrix {
	c, _ := NewAdjacencyMatrix(m.capacity, m.directed) // capacity already validated
	copy(c.data, m.data)

	return c
}

func (m *AdjacencyMatrix) checkPair(op string, i, j int) error {
	if i < 0 || i >= m.capacity || j < 0 || j >= m.capacity {
		return fmt.Errorf("%s(%d,%d): capacity %d: %w", op, i, j, m.capacity, ErrOutOfRange)
	}

	return nil
}
