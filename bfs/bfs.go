// Package bfs provides breadth-first search over a raw weight table,
// returning unweighted hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	w       [][]int64
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on the square table w starting from start,
// applying any number of functional Options.
//
// Neighbors of a row are scanned in ascending column order; NoEdge cells and
// the diagonal are skipped. Each reachable vertex is visited exactly once.
//
// Returns matrix.ErrNonSquare for a malformed table, ErrEmptyGraph for a
// 0×0 table, ErrStartVertexNotFound for an out-of-range start,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(w [][]int64, start int, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	n := len(w)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: index %d of %d", ErrStartVertexNotFound, start, n)
	}

	// Prepare walker
	wk := &walker{
		w:       w,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		wk.res.Depth[i] = -1
		wk.res.Parent[i] = -1
	}

	// Seed queue with start vertex (no parent)
	wk.enqueue(start, 0, -1)
	// Main loop
	return wk.res, wk.loop()
}

// enqueue marks idx visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (wk *walker) enqueue(idx, d, parent int) {
	wk.visited[idx] = true
	wk.res.Depth[idx] = d
	wk.res.Parent[idx] = parent
	wk.opts.OnEnqueue(idx, d)
	wk.queue = append(wk.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty or a hook fails.
func (wk *walker) loop() error {
	for len(wk.queue) > 0 {
		item := wk.queue[0]
		wk.queue = wk.queue[1:]

		wk.res.Order = append(wk.res.Order, item.idx)
		if err := wk.opts.OnVisit(item.idx, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
		}
		wk.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors scans the row of item, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (wk *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if wk.opts.MaxDepth > 0 && nextDepth > wk.opts.MaxDepth {
		return
	}
	for nbr, weight := range wk.w[item.idx] {
		if nbr == item.idx || weight == matrix.NoEdge || wk.visited[nbr] {
			continue
		}
		if !wk.opts.FilterNeighbor(item.idx, nbr, weight) {
			continue
		}
		wk.enqueue(nbr, nextDepth, item.idx)
	}
}
