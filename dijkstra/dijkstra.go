// Dijkstra on a dense weight table.
//
// The table form makes the array variant the natural choice: each round scans
// the unsettled vertices for the minimum tentative distance (ties go to the
// lowest index) and relaxes that vertex's row. No heap is needed.
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all cells (O(V²)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop once the closest unsettled vertex lies beyond MaxDistance.
//   - A finite distance that would reach matrix.NoEdge is reported as
//     matrix.ErrWeightOverflow rather than being mistaken for "unreachable".

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// Dijkstra computes shortest distances and predecessors from source to every
// vertex of the square table w.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. w must be square (matrix.ErrNonSquare) and non-empty (ErrEmptyGraph).
//  3. source must be a valid index (ErrVertexNotFound).
//  4. No off-diagonal edge may have negative weight (ErrNegativeWeight).
//
// A distance beyond the int64 range yields matrix.ErrWeightOverflow.
//
// Self-loops are ignored; Dist[source] is always 0.
func Dijkstra(w [][]int64, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate table shape
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	n := len(w)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// 3) Validate source
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: index %d of %d", ErrVertexNotFound, source, n)
	}

	// 4) Pre-scan for negative weights.
	for i, row := range w {
		for j, wt := range row {
			if i != j && wt < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, i, j, wt)
			}
		}
	}

	// 5) Run.
	r := newRunner(w, source, cfg)
	if err := r.process(); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// Distances returns only the distance slice of Dijkstra(w, source).
func Distances(w [][]int64, source int, opts ...Option) ([]int64, error) {
	res, err := Dijkstra(w, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Paths returns, for every destination index, the index sequence of one
// shortest path from source. Unreachable destinations map to an empty path;
// source maps to [source].
func Paths(w [][]int64, source int, opts ...Option) (map[int][]int, error) {
	res, err := Dijkstra(w, source, opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[int][]int, len(res.Dist))
	for v := range res.Dist {
		path, err := res.PathTo(v)
		if err != nil {
			out[v] = []int{}
			continue
		}
		out[v] = path
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	w       [][]int64 // The input table; read-only within Dijkstra.
	options Options   // Configuration options.
	dist    []int64   // Vertex → current best distance from source.
	prev    []int     // Vertex → predecessor on the shortest path.
	settled []bool    // Tracks if a vertex's distance is final.
}

// newRunner sets up initial distances and predecessors.
func newRunner(w [][]int64, source int, cfg Options) *runner {
	n := len(w)
	r := &runner{
		w:       w,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = matrix.NoEdge
		r.prev[v] = -1
	}
	r.dist[source] = 0

	return r
}

// process settles one vertex per round until every reachable vertex within
// MaxDistance is final. Tentative distances left unsettled are discarded.
func (r *runner) process() error {
	for {
		u := r.closest()
		if u < 0 {
			break
		}
		r.settled[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}
	for v, ok := range r.settled {
		if !ok {
			r.dist[v] = matrix.NoEdge
			r.prev[v] = -1
		}
	}

	return nil
}

// closest returns the unsettled vertex with the smallest finite distance not
// exceeding MaxDistance, preferring the lowest index on ties; -1 if none.
func (r *runner) closest() int {
	best := -1
	for v, d := range r.dist {
		if r.settled[v] || d == matrix.NoEdge || d > r.options.MaxDistance {
			continue
		}
		if best < 0 || d < r.dist[best] {
			best = v
		}
	}

	return best
}

// relax improves the distances of u's unsettled neighbours through u.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	for v, wt := range r.w[u] {
		if v == u || r.settled[v] || wt == matrix.NoEdge || wt >= r.options.InfEdgeThreshold {
			continue
		}
		cand, err := matrix.SumWeights(du, wt)
		if err != nil {
			return fmt.Errorf("relax %d→%d: %w", u, v, err)
		}
		if cand < r.dist[v] {
			r.dist[v] = cand
			r.prev[v] = u
		}
	}

	return nil
}
