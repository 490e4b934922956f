// SPDX-License-Identifier: MIT

package graph

import "github.com/katalvlaran/mgraph/disjointset"

// Interface is the capability set of a matrix-backed weighted graph over V.
// *Graph[V] implements it.
type Interface[V comparable] interface {
	AddVertex(v V) (int, error)
	AddEdge(v, u V) error
	AddWeightedEdge(v, u V, w int64) error
	RemoveVertex(v V) error
	RemoveEdge(v, u V) error
	AreConnected(v, u V) (bool, error)

	BFS(start V) ([]V, error)
	DFS(start V) ([]V, error)

	Dijkstra(src V) ([]int64, error)
	DijkstraPaths(src V) (map[int][]int, error)
	FloydWarshall() ([][]int64, error)
	FloydWarshallPath(start, end int) (string, error)
	FloydWarshallCost(start, end int) (int64, error)

	Kruskal() ([][]int64, int64, error)
	KruskalSet() (*disjointset.DisjointSet, error)
	Prim() ([]int, int64, error)

	VertexSize() int
	Index(v V) (int, error)
	VertexAdjacent(v V) ([]V, error)
	IsDirected() bool
	Vertices() map[V]int
	Weight() [][]int64
}

var _ Interface[string] = (*Graph[string])(nil)
