// Package bfs provides breadth-first search over the raw weight table of a
// matrix-backed graph, returning visit order, hop depths and parent links.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start index.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: index → hops from start (-1 if unreached)
//   - Parent: index → predecessor in the BFS tree (-1 for the root)
//   - Hooks: OnEnqueue (before a vertex is queued), OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth limits depth.
//
// Determinism
//
//	Rows are scanned in ascending column order, so the visit sequence depends
//	only on the table and the start index.
//
// Complexity (V = table order)
//
//   - Time:   O(V²)   (every row is scanned once)
//   - Memory: O(V)
//
// The table is read, never written; NoEdge cells and the diagonal are ignored.
package bfs
