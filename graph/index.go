// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"maps"
)

// VertexIndex is a bijection between vertex values and dense indices
// 0..Len()-1, assigned in insertion order.
type VertexIndex[V comparable] struct {
	forward map[V]int
	reverse []V
}

// NewVertexIndex returns an empty index sized for capacity vertices.
func NewVertexIndex[V comparable](capacity int) *VertexIndex[V] {
	return &VertexIndex[V]{
		forward: make(map[V]int, capacity),
		reverse: make([]V, 0, capacity),
	}
}

// Add registers v and returns its index. Adding a known v returns its
// existing index with added == false.
func (x *VertexIndex[V]) Add(v V) (idx int, added bool) {
	if i, ok := x.forward[v]; ok {
		return i, false
	}
	idx = len(x.reverse)
	x.forward[v] = idx
	x.reverse = append(x.reverse, v)

	return idx, true
}

// Index returns the index of v.
func (x *VertexIndex[V]) Index(v V) (int, error) {
	i, ok := x.forward[v]
	if !ok {
		return 0, fmt.Errorf("Index(%v): %w", v, ErrVertexNotFound)
	}

	return i, nil
}

// Has reports whether v was added.
func (x *VertexIndex[V]) Has(v V) bool {
	_, ok := x.forward[v]

	return ok
}

// At returns the vertex stored at index i.
func (x *VertexIndex[V]) At(i int) (V, error) {
	if i < 0 || i >= len(x.reverse) {
		var zero V
		return zero, fmt.Errorf("At(%d): %d vertices: %w", i, len(x.reverse), ErrVertexNotFound)
	}

	return x.reverse[i], nil
}

// Len returns the number of vertices.
func (x *VertexIndex[V]) Len() int { return len(x.reverse) }

// Map returns a copy of the vertex → index mapping.
func (x *VertexIndex[V]) Map() map[V]int { return maps.Clone(x.forward) }

// translate maps indices to vertices. Every index must be valid.
func (x *VertexIndex[V]) translate(idx []int) []V {
	out := make([]V, len(idx))
	for i, j := range idx {
		out[i] = x.reverse[j]
	}

	return out
}
