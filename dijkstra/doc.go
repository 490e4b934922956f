// Package dijkstra computes single-source shortest paths on a square weight
// table with non-negative edge weights.
//
// Overview:
//
//   - The input is a [][]int64 table in which matrix.NoEdge marks a missing
//     edge and every other off-diagonal value is an edge weight (0 included).
//   - The array form of the algorithm is used: V rounds, each selecting the
//     closest unsettled vertex by a linear scan. On dense tables this beats a
//     heap, since every row must be read anyway.
//   - Ties are broken by the lowest index, so results are deterministic.
//
// Outputs:
//
//   - Dijkstra returns a *Result with Dist and Prev slices; Result.PathTo
//     rebuilds the index path to any reached vertex.
//   - Distances returns only Dist.
//   - Paths returns a map destination → path, with an empty path for
//     unreachable destinations.
//
// Options:
//
//   - WithMaxDistance caps exploration; vertices farther away stay unreachable.
//   - WithInfEdgeThreshold treats heavy edges as walls.
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V) beyond the input table.
//
// Errors:
//
//   - ErrEmptyGraph, ErrVertexNotFound, ErrNegativeWeight,
//     ErrBadMaxDistance, ErrBadInfThreshold, matrix.ErrNonSquare.
//   - Result.PathTo reports ErrNoPath for vertices that were not reached.
//
// Example:
//
//	const x = matrix.NoEdge
//	w := [][]int64{
//		{0, 1, 4},
//		{x, 0, 2},
//		{x, x, 0},
//	}
//	res, _ := dijkstra.Dijkstra(w, 0)
//	// res.Dist == [0 1 3]
//	path, _ := res.PathTo(2)
//	// path == [0 1 2]
package dijkstra
