// Package dfs implements depth‑first search (single‑source and forest) over a
// raw weight table.
//
// Key features:
//   - DFS(w, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - TopologicalSort and HasCycle for cycle-aware orderings
//
// Complexity:
//
//   - Time:   O(V²) for traversal (every row is scanned once), plus hooks and filters.
//   - Memory: O(V) for recursion stack and metadata slices.
//
// Errors:
//
//   - matrix.ErrNonSquare       if the table is malformed.
//   - ErrEmptyGraph             if the table has no vertices.
//   - ErrStartVertexNotFound    if start is out of range.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	w    [][]int64  // weight table, read only
	opts DFSOptions // traversal options
	res  *DFSResult // result collector
}

// DFS performs depth‑first search on w. Neighbors are explored in ascending
// index order, skipping NoEdge cells and the diagonal. If opts include
// WithFullTraversal, it then restarts from every unvisited vertex.
// Returns DFSResult (partial on hook abort) or error.
func DFS(w [][]int64, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input table
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	n := len(w)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: index %d of %d", ErrStartVertexNotFound, start, n)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &DFSResult{
		Order:     make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Visited:   make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	walker := &dfsWalker{w: w, opts: dopts, res: res}

	// 4. Traverse: start tree first, then the rest of the forest if requested
	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	}

	// 5. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (wk *dfsWalker) traverse(id, depth int) error {
	// 1. Mark visited and record depth
	wk.res.Visited[id] = true
	wk.res.Depth[id] = depth
	wk.res.Order = append(wk.res.Order, id)

	// 2. Pre‑order hook
	if wk.opts.OnVisit != nil {
		if err := wk.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 3. Explore each neighbor in column order
	for nid, weight := range wk.w[id] {
		if nid == id || weight == matrix.NoEdge || wk.res.Visited[nid] {
			continue
		}
		if wk.opts.FilterNeighbor != nil && !wk.opts.FilterNeighbor(nid) {
			wk.opts.SkippedNeighbors++
			continue
		}
		if wk.opts.MaxDepth >= 0 && depth+1 > wk.opts.MaxDepth {
			continue
		}
		wk.res.Parent[nid] = id
		if err := wk.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	// 4. Post‑order hook
	if wk.opts.OnExit != nil {
		if err := wk.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 5. Record finish order
	wk.res.PostOrder = append(wk.res.PostOrder, id)

	return nil
}
