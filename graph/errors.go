// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph operations. Errors from the kernel packages are
// joined with one of these, so callers may match either with errors.Is.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex (or index)
	// that was never added.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrCapacityExceeded indicates AddVertex was called on a full graph.
	ErrCapacityExceeded = errors.New("graph: capacity exceeded")

	// ErrEmptyGraph indicates an algorithm was run on a graph with no vertices.
	ErrEmptyGraph = errors.New("graph: graph has no vertices")

	// ErrDisconnected indicates that a spanning tree cannot cover every vertex.
	ErrDisconnected = errors.New("graph: graph is disconnected")

	// ErrInvalidWeight indicates a weight the operation cannot accept:
	// matrix.NoEdge as an edge weight, or a negative weight for Dijkstra.
	ErrInvalidWeight = errors.New("graph: invalid edge weight")

	// ErrInvalidOptions indicates that construction options failed validation.
	ErrInvalidOptions = errors.New("graph: invalid options")

	// ErrNotUndirected indicates an MST was requested on a directed graph.
	ErrNotUndirected = errors.New("graph: operation requires an undirected graph")

	// ErrNoPath indicates that the requested destination is unreachable.
	ErrNoPath = errors.New("graph: no path between vertices")
)
