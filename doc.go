// Package mgraph is an in-memory, matrix-backed weighted graph library:
// a generic Graph over any comparable vertex type plus the classic dense-graph
// algorithms that run directly on its weight table.
//
// What's inside:
//
//	graph/         Graph[V], VertexIndex[V], options, sentinel errors, the Interface[V] contract
//	matrix/        fixed-capacity AdjacencyMatrix, the NoEdge sentinel, Floyd–Warshall with paths
//	bfs/, dfs/     traversals with hooks; DFS also offers TopologicalSort and HasCycle
//	dijkstra/      O(V²) array Dijkstra with predecessor paths
//	prim_kruskal/  minimum spanning trees (Kruskal table + union-find, Prim parent array)
//	disjointset/   union-find with path compression and union by rank
//	builder/       deterministic fixtures (path, cycle, star, grid, random sparse, ...)
//
// Conventions shared by every package:
//
//   - Weights are int64; matrix.NoEdge (math.MaxInt64) means "no edge", so
//     zero and negative values are ordinary weights. Stored weights are
//     bounded by matrix.MaxWeight so sums never overflow.
//   - Errors are package sentinels matched with errors.Is. Nothing panics on
//     user input.
//   - Results are deterministic: ties resolve by the lowest vertex index.
//
// Quick ASCII example:
//
//	    A─2─B
//	     \  │
//	     10 3
//	       \│
//	        C
//
// Floyd–Warshall reports A→C = 5 via B, and both MST algorithms pick A–B and
// B–C with total weight 5.
//
//	go get github.com/katalvlaran/mgraph
package mgraph
