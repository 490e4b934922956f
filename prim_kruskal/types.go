// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected weight table.
// Returned when the table is not square or not symmetric.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a square symmetric weight table")

// ErrEmptyGraph indicates that the table has no vertices.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrBadRoot indicates that the Prim root index is outside the table.
var ErrBadRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root, array selection).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which root index to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   int:    start index for Prim; ignored when Method == MethodKruskal.
//
// Complexity: O(V²) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting index for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the root index for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method and returns
// the tree as an edge list (From < To) with its total weight.
//
//	– MethodKruskal: edges of the Kruskal tree in row-major order.
//	– MethodPrim:    edges of the Prim tree in index order of the child.
//	– Otherwise:     ErrUnknownMethod.
//
// Note: this is optional scaffolding; Prim and Kruskal can still be called directly.
func Compute(w [][]int64, opts MSTOptions) ([]matrix.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		tree, total, err := Kruskal(w)
		if err != nil {
			return nil, 0, err
		}

		return matrix.Edges(tree, true), total, nil
	case MethodPrim:
		parent, total, err := Prim(w, opts.Root)
		if err != nil {
			return nil, 0, err
		}

		return Edges(parent, w), total, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// Edges converts a parent array into tree edges, one per non-root vertex,
// ordered by child index. Each edge has From < To and the weight w[parent][child].
func Edges(parent []int, w [][]int64) []matrix.Edge {
	out := make([]matrix.Edge, 0, len(parent))
	for v, p := range parent {
		if p < 0 {
			continue
		}
		from, to := p, v
		if from > to {
			from, to = to, from
		}
		out = append(out, matrix.Edge{From: from, To: to, Weight: w[p][v]})
	}

	return out
}

// validate checks that w is a non-empty square symmetric table.
func validate(w [][]int64) error {
	if err := matrix.ValidateSymmetric(w); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if len(w) == 0 {
		return ErrEmptyGraph
	}

	return nil
}
