// Package dfs implements depth-first search, topological sort and cycle
// detection over the raw weight table of a matrix-backed graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks that may abort
//   - Depth limiting and neighbor filtering
//   - Forest mode (WithFullTraversal) covering every component
//   - TopologicalSort: a linear ordering of a directed acyclic table,
//     ErrCycleDetected otherwise.
//   - HasCycle: cycle test for directed or undirected tables using the
//     White / Gray / Black coloring.
//
// Why:
//   - Determine safe execution orders in dependency graphs
//   - Detect cycles before they turn into infinite loops
//   - Provide reachability and DFS trees for further analysis
//
// Input:
//
//	A square [][]int64 table; matrix.NoEdge marks a missing edge and the
//	diagonal is never followed by DFS. Neighbors are explored in ascending
//	column order, which makes every result deterministic.
//
// Complexity (V = table order):
//
//   - DFS:             Time O(V²), Memory O(V)
//   - TopologicalSort: Time O(V²), Memory O(V)
//   - HasCycle:        Time O(V²), Memory O(V)
//
// Errors:
//
//   - ErrEmptyGraph           table has no vertices
//   - ErrStartVertexNotFound  start index outside the table
//   - ErrCycleDetected        cycle found by TopologicalSort
//   - matrix.ErrNonSquare     ragged table
//   - hook errors             propagated from OnVisit or OnExit
package dfs
