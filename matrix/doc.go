// Package matrix offers the dense weight table behind mgraph and the
// all-pairs shortest path kernel that runs on it.
//
// The matrix package provides:
//
//   - AdjacencyMatrix: a fixed-capacity capacity×capacity int64 table with
//     O(1) edge-weight lookups and O(V²) memory. Every cell starts as NoEdge.
//   - Raw-table helpers (ValidateSquare, ValidateSymmetric, AddWeights, SumWeights, Edges)
//     shared by the traversal, shortest-path and MST kernels.
//   - FloydWarshall / AllPairs: O(V³) all-pairs distances with next-hop path
//     reconstruction.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix
