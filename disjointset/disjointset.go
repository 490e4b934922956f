// SPDX-License-Identifier: MIT
// Package disjointset implements a fixed-size union-find structure over the
// integer indices 0..n-1.
//
// Find uses iterative path compression and Union merges by rank, so both run in
// amortized O(α(n)) time. Kruskal's algorithm relies on this bound to stay
// within O(E log E) overall.
//
// Errors:
//
//	ErrOutOfRange - an index outside [0, Len()) was supplied.
package disjointset

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that an element index is outside [0, Len()).
var ErrOutOfRange = errors.New("disjointset: index out of range")

// DisjointSet partitions {0 … n-1} into components, each identified by a
// representative. The zero value is an empty set of zero elements.
type DisjointSet struct {
	parent []int // parent[x] == x for representatives
	rank   []int // upper bound on tree height, valid for roots only
	size   []int // number of elements, valid for roots only
	count  int   // number of components
}

// New returns a DisjointSet of n singleton components.
// A negative n is treated as zero.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint components.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of x's component.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return -1, fmt.Errorf("Find: %w", err)
	}

	return d.root(x), nil
}

// Union merges the components of x and y. It reports whether a merge happened;
// false means both were already in the same component.
func (d *DisjointSet) Union(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}
	if err := d.check(y); err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}

	return d.merge(x, y), nil
}

// Connected reports whether x and y share a component.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}
	if err := d.check(y); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}

	return d.root(x) == d.root(y), nil
}

// SizeOf returns the number of elements in x's component.
func (d *DisjointSet) SizeOf(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, fmt.Errorf("SizeOf: %w", err)
	}

	return d.size[d.root(x)], nil
}

// Components returns every component as an ascending slice of members.
// Components are ordered by their smallest member.
func (d *DisjointSet) Components() [][]int {
	slot := make(map[int]int, d.count) // representative → position in out
	out := make([][]int, 0, d.count)
	for x := range d.parent {
		r := d.root(x)
		pos, ok := slot[r]
		if !ok {
			pos = len(out)
			slot[r] = pos
			out = append(out, make([]int, 0, d.size[r]))
		}
		out[pos] = append(out[pos], x)
	}

	return out
}

// root walks to the representative, halving the path on the way.
func (d *DisjointSet) root(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// merge is Union without bounds checks; callers guarantee valid indices.
func (d *DisjointSet) merge(x, y int) bool {
	rx, ry := d.root(x), d.root(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper one.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true
}

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("index %d not in [0,%d): %w", x, len(d.parent), ErrOutOfRange)
	}

	return nil
}
