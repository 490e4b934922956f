// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// Graph is a weighted graph over vertices of type V stored in a fixed-capacity
// adjacency matrix.
//
// A Graph is not safe for concurrent use: it assumes a single writer, and
// Weight hands out live rows.
type Graph[V comparable] struct {
	opts  Options
	index *VertexIndex[V]
	adj   *matrix.AdjacencyMatrix
}

// New creates an empty graph. Without options it holds up to DefaultCapacity
// vertices and is undirected.
//
// Errors:
//   - ErrInvalidOptions: capacity outside [1, MaxCapacity].
func New[V comparable](opts ...Option) (*Graph[V], error) {
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, err
	}
	adj, err := matrix.NewAdjacencyMatrix(o.Capacity, o.Directed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return &Graph[V]{
		opts:  o,
		index: NewVertexIndex[V](o.Capacity),
		adj:   adj,
	}, nil
}

// AddVertex registers v and returns its index. Re-adding v is a no-op that
// returns the existing index. On error the index is -1.
//
// Errors:
//   - ErrCapacityExceeded: v is new and the graph is full.
func (g *Graph[V]) AddVertex(v V) (int, error) {
	if i, err := g.index.Index(v); err == nil {
		return i, nil
	}
	if g.index.Len() >= g.opts.Capacity {
		return -1, fmt.Errorf("AddVertex(%v): capacity %d: %w", v, g.opts.Capacity, ErrCapacityExceeded)
	}
	i, _ := g.index.Add(v)

	return i, nil
}

// AddEdge adds v→u with DefaultEdgeWeight (mirrored when undirected).
func (g *Graph[V]) AddEdge(v, u V) error {
	return g.AddWeightedEdge(v, u, DefaultEdgeWeight)
}

// AddWeightedEdge adds v→u with weight w, replacing any previous weight.
// Undirected graphs also store u→v. Zero and negative weights are real edges;
// v == u stores a self-loop, which traversals and AreConnected ignore.
//
// Errors:
//   - ErrVertexNotFound: v or u unknown.
//   - ErrInvalidWeight:  |w| > MaxWeight (matrix.NoEdge included).
func (g *Graph[V]) AddWeightedEdge(v, u V, w int64) error {
	i, j, err := g.pair("AddWeightedEdge", v, u)
	if err != nil {
		return err
	}
	if err = g.adj.Set(i, j, w); err != nil {
		if errors.Is(err, matrix.ErrInvalidWeight) {
			return fmt.Errorf("AddWeightedEdge(%v,%v): %w: %w", v, u, ErrInvalidWeight, err)
		}
		return err
	}

	return nil
}

// RemoveEdge deletes v→u (and u→v when undirected). Removing an absent edge
// is not an error.
func (g *Graph[V]) RemoveEdge(v, u V) error {
	i, j, err := g.pair("RemoveEdge", v, u)
	if err != nil {
		return err
	}

	return g.adj.Clear(i, j)
}

// RemoveVertex is accepted for interface completeness but does nothing:
// indices are never reassigned, so the vertex and its edges stay in place.
// Unknown vertices still report ErrVertexNotFound.
func (g *Graph[V]) RemoveVertex(v V) error {
	if _, err := g.index.Index(v); err != nil {
		return fmt.Errorf("RemoveVertex: %w", err)
	}

	return nil
}

// AreConnected reports whether the edge v→u exists. A vertex is never
// connected to itself, even with a stored self-loop.
func (g *Graph[V]) AreConnected(v, u V) (bool, error) {
	i, j, err := g.pair("AreConnected", v, u)
	if err != nil {
		return false, err
	}
	if i == j {
		return false, nil
	}

	return g.adj.HasEdge(i, j)
}

// VertexAdjacent returns the targets of v's outgoing edges in index order,
// excluding v itself.
func (g *Graph[V]) VertexAdjacent(v V) ([]V, error) {
	i, err := g.index.Index(v)
	if err != nil {
		return nil, fmt.Errorf("VertexAdjacent: %w", err)
	}

	row := g.adj.Rows()[i]
	out := make([]V, 0)
	for j := 0; j < g.index.Len(); j++ {
		if j != i && row[j] != matrix.NoEdge {
			out = append(out, g.index.reverse[j])
		}
	}

	return out, nil
}

// VertexSize returns the number of vertices added.
func (g *Graph[V]) VertexSize() int { return g.index.Len() }

// Capacity returns the maximum number of vertices.
func (g *Graph[V]) Capacity() int { return g.opts.Capacity }

// IsDirected reports whether edges are one-way.
func (g *Graph[V]) IsDirected() bool { return g.opts.Directed }

// Index returns the matrix index of v.
func (g *Graph[V]) Index(v V) (int, error) { return g.index.Index(v) }

// VertexAt returns the vertex stored at index i.
func (g *Graph[V]) VertexAt(i int) (V, error) { return g.index.At(i) }

// Vertices returns a copy of the vertex → index mapping.
func (g *Graph[V]) Vertices() map[V]int { return g.index.Map() }

// Weight returns the full capacity × capacity weight rows. The rows are live:
// writes through them change the graph, and later edge updates are visible.
// Rows beyond VertexSize() hold matrix.NoEdge.
func (g *Graph[V]) Weight() [][]int64 { return g.adj.Rows() }

// pair resolves both endpoints of an edge operation.
func (g *Graph[V]) pair(op string, v, u V) (int, int, error) {
	i, err := g.index.Index(v)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	j, err := g.index.Index(u)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}

	return i, j, nil
}

// view returns the live n×n region covering the added vertices.
func (g *Graph[V]) view() ([][]int64, error) {
	n := g.index.Len()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	return g.adj.View(n)
}
