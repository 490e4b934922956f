// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every error returned by this package matches one of these via errors.Is.
// No function panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ...". Context is attached at the
// call site with fmt.Errorf("Op: ...: %w", ErrX).
var (
	// ErrBadShape is returned when a requested capacity is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Public indexers (At/Set/Clear) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square weight table was required but the
	// input had a row of different length.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a table expected to describe an undirected
	// graph has w[i][j] != w[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrInvalidWeight is returned when NoEdge, or a weight beyond MaxWeight,
	// is written as an edge weight.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrEmptyMatrix is returned by kernels that need at least one vertex.
	ErrEmptyMatrix = errors.New("matrix: matrix has no vertices")

	// ErrNegativeCycle is returned by Floyd–Warshall when some vertex can
	// reach itself with negative total weight.
	ErrNegativeCycle = errors.New("matrix: negative cycle detected")

	// ErrWeightOverflow is returned when a sum of finite weights leaves the
	// int64 range. Only raw tables holding weights beyond MaxWeight can hit it.
	ErrWeightOverflow = errors.New("matrix: weight sum overflows int64")

	// ErrNoPath indicates that the requested destination is unreachable.
	ErrNoPath = errors.New("matrix: no path between vertices")
)
