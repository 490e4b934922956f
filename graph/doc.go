// SPDX-License-Identifier: MIT

// Package graph provides Graph, a weighted graph over any comparable vertex
// type backed by a fixed-capacity adjacency matrix.
//
// Model:
//
//   - Vertices receive dense indices 0..n-1 in insertion order (VertexIndex).
//     Adding a known vertex returns its index again.
//   - Edge weights are int64. matrix.NoEdge marks "no edge"; every value in
//     [-MaxWeight, MaxWeight], zero and negatives included, is an edge. The
//     bound keeps every path and tree sum inside int64.
//   - Undirected graphs store every edge in both directions.
//   - Capacity is fixed at construction (DefaultCapacity unless WithCapacity
//     is given); options are validated with go-playground/validator.
//
// Algorithms delegate to the kernel packages over the live n×n matrix view:
//
//   - BFS / DFS          → bfs, dfs
//   - Dijkstra variants  → dijkstra
//   - Floyd–Warshall     → matrix
//   - Kruskal / Prim     → prim_kruskal, disjointset
//
// Results are in index space (distances, paths, MST tables) except traversals
// and ShortestPath, which return vertices.
//
// Errors are sentinels matched with errors.Is. Kernel errors are joined with
// the matching graph sentinel, so both ErrDisconnected and
// prim_kruskal.ErrDisconnected match a disconnected Kruskal call.
//
// A Graph is meant for one goroutine at a time.
//
// Example:
//
//	g, _ := graph.New[string]()
//	for _, v := range []string{"A", "B", "C"} {
//		_, _ = g.AddVertex(v)
//	}
//	_ = g.AddWeightedEdge("A", "B", 2)
//	_ = g.AddWeightedEdge("B", "C", 3)
//	_ = g.AddWeightedEdge("A", "C", 10)
//	cost, _ := g.FloydWarshallCost(0, 2) // 5
package graph
