// Core types and configuration options for Dijkstra's shortest-path
// algorithm on weight tables.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptyGraph      if the table has no vertices.
//	– ErrVertexNotFound  if the source index is outside the table.
//	– ErrNegativeWeight  if a negative edge weight is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.

package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptyGraph indicates that the table has no vertices.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrVertexNotFound indicates that the source index is outside the table.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the requested destination was not reached.
	ErrNoPath = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this value are left
//
//	unreachable. Must be ≥ 0. Default is matrix.NoEdge (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is matrix.NoEdge (only missing edges are impassable).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold at or above which edges are non-traversable

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// A negative value is recorded and reported as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// A non-positive value is recorded and reported as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      matrix.NoEdge (no distance limit).
//   - InfEdgeThreshold: matrix.NoEdge (only NoEdge cells are impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      matrix.NoEdge,
		InfEdgeThreshold: matrix.NoEdge,
	}
}

// Result is the outcome of a single-source run.
// Dist[v] is the shortest distance from Source (matrix.NoEdge if unreachable).
// Prev[v] is the predecessor of v on that path (-1 for Source and unreachable v).
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// PathTo rebuilds the index path Source → dst. Returns ErrNoPath if dst was
// not reached and matrix.ErrOutOfRange for an invalid index.
func (r *Result) PathTo(dst int) ([]int, error) {
	if dst < 0 || dst >= len(r.Dist) {
		return nil, fmt.Errorf("dijkstra: PathTo(%d): %w", dst, matrix.ErrOutOfRange)
	}
	if r.Dist[dst] == matrix.NoEdge {
		return nil, fmt.Errorf("dijkstra: PathTo(%d): %w", dst, ErrNoPath)
	}

	var path []int
	for cur := dst; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// reverse into Source → dst order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
