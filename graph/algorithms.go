// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mgraph/bfs"
	"github.com/katalvlaran/mgraph/dfs"
	"github.com/katalvlaran/mgraph/dijkstra"
	"github.com/katalvlaran/mgraph/disjointset"
	"github.com/katalvlaran/mgraph/matrix"
	"github.com/katalvlaran/mgraph/prim_kruskal"
)

// PathSeparator joins vertices in FloydWarshallPath output.
const PathSeparator = " -> "

// BFS returns the vertices reachable from start in breadth-first order.
// Neighbours are expanded in index order.
func (g *Graph[V]) BFS(start V) ([]V, error) {
	w, s, err := g.source("BFS", start)
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(w, s)
	if err != nil {
		return nil, fmt.Errorf("BFS: %w", err)
	}

	return g.index.translate(res.Order), nil
}

// DFS returns the vertices reachable from start in depth-first pre-order.
// Neighbours are explored in index order.
func (g *Graph[V]) DFS(start V) ([]V, error) {
	w, s, err := g.source("DFS", start)
	if err != nil {
		return nil, err
	}
	res, err := dfs.DFS(w, s)
	if err != nil {
		return nil, fmt.Errorf("DFS: %w", err)
	}

	return g.index.translate(res.Order), nil
}

// Dijkstra returns shortest distances from src indexed by vertex index.
// Unreachable vertices hold matrix.NoEdge.
//
// Errors:
//   - ErrEmptyGraph, ErrVertexNotFound.
//   - ErrInvalidWeight (joined with dijkstra.ErrNegativeWeight) for negative edges.
func (g *Graph[V]) Dijkstra(src V) ([]int64, error) {
	res, err := g.dijkstra("Dijkstra", src)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// DijkstraPaths returns, for every vertex index, one shortest index path from
// src. Unreachable destinations map to an empty path; src maps to [src].
func (g *Graph[V]) DijkstraPaths(src V) (map[int][]int, error) {
	w, s, err := g.source("DijkstraPaths", src)
	if err != nil {
		return nil, err
	}
	paths, err := dijkstra.Paths(w, s)
	if err != nil {
		return nil, dijkstraError("DijkstraPaths", err)
	}

	return paths, nil
}

// ShortestPath returns the vertices of one shortest path src → dst and its cost.
func (g *Graph[V]) ShortestPath(src, dst V) ([]V, int64, error) {
	res, err := g.dijkstra("ShortestPath", src)
	if err != nil {
		return nil, 0, err
	}
	d, err := g.index.Index(dst)
	if err != nil {
		return nil, 0, fmt.Errorf("ShortestPath: %w", err)
	}
	path, err := res.PathTo(d)
	if err != nil {
		return nil, 0, fmt.Errorf("ShortestPath(%v,%v): %w: %w", src, dst, ErrNoPath, err)
	}

	return g.index.translate(path), res.Dist[d], nil
}

// FloydWarshall returns the all-pairs shortest distance table of the added
// vertices. Unreachable pairs hold matrix.NoEdge; the diagonal is 0.
// A negative cycle is reported as matrix.ErrNegativeCycle.
func (g *Graph[V]) FloydWarshall() ([][]int64, error) {
	w, err := g.view()
	if err != nil {
		return nil, fmt.Errorf("FloydWarshall: %w", err)
	}

	return matrix.FloydWarshall(w)
}

// FloydWarshallPath renders the shortest path between two vertex indices as
// "A -> B -> C". FloydWarshallCost reports the cost of exactly this path.
func (g *Graph[V]) FloydWarshallPath(start, end int) (string, error) {
	path, err := g.allPairsPath("FloydWarshallPath", start, end)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(path))
	for i, v := range g.index.translate(path) {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, PathSeparator), nil
}

// FloydWarshallCost returns the total weight of the shortest path between two
// vertex indices.
func (g *Graph[V]) FloydWarshallCost(start, end int) (int64, error) {
	sp, err := g.allPairs("FloydWarshallCost", start, end)
	if err != nil {
		return 0, err
	}
	cost, err := sp.Cost(start, end)
	if err != nil {
		return 0, fmt.Errorf("FloydWarshallCost: %w: %w", ErrNoPath, err)
	}

	return cost, nil
}

// Kruskal returns the minimum spanning tree as a VertexSize() × VertexSize()
// table holding only the tree edges (mirrored), plus its total weight.
//
// Errors:
//   - ErrEmptyGraph, ErrNotUndirected, ErrDisconnected.
func (g *Graph[V]) Kruskal() ([][]int64, int64, error) {
	w, err := g.mstView("Kruskal")
	if err != nil {
		return nil, 0, err
	}
	tree, total, err := prim_kruskal.Kruskal(w)
	if err != nil {
		return nil, 0, mstError("Kruskal", err)
	}

	return tree, total, nil
}

// KruskalSet returns the union-find state after Kruskal's edge scan. Each
// component of the result is one connected piece of the graph, so it is
// meaningful for disconnected graphs too.
func (g *Graph[V]) KruskalSet() (*disjointset.DisjointSet, error) {
	w, err := g.mstView("KruskalSet")
	if err != nil {
		return nil, err
	}
	ds, err := prim_kruskal.KruskalSet(w)
	if err != nil {
		return nil, mstError("KruskalSet", err)
	}

	return ds, nil
}

// Prim returns the minimum spanning tree rooted at index 0 as a parent array
// (parent[0] == -1) plus its total weight. Errors match Kruskal.
func (g *Graph[V]) Prim() ([]int, int64, error) {
	w, err := g.mstView("Prim")
	if err != nil {
		return nil, 0, err
	}
	parent, total, err := prim_kruskal.Prim(w, 0)
	if err != nil {
		return nil, 0, mstError("Prim", err)
	}

	return parent, total, nil
}

// TopologicalSort orders the vertices of a directed acyclic graph so that
// every edge points forward. Cycles yield dfs.ErrCycleDetected.
func (g *Graph[V]) TopologicalSort() ([]V, error) {
	w, err := g.view()
	if err != nil {
		return nil, fmt.Errorf("TopologicalSort: %w", err)
	}
	order, err := dfs.TopologicalSort(w)
	if err != nil {
		return nil, fmt.Errorf("TopologicalSort: %w", err)
	}

	return g.index.translate(order), nil
}

// HasCycle reports whether the graph contains a cycle. In undirected graphs
// the edge back to a vertex's DFS parent does not count; a self-loop does.
func (g *Graph[V]) HasCycle() (bool, error) {
	w, err := g.view()
	if err != nil {
		return false, fmt.Errorf("HasCycle: %w", err)
	}

	return dfs.HasCycle(w, !g.opts.Directed)
}

// source resolves the view and the start index of a single-source operation.
func (g *Graph[V]) source(op string, start V) ([][]int64, int, error) {
	w, err := g.view()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	s, err := g.index.Index(start)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return w, s, nil
}

func (g *Graph[V]) dijkstra(op string, src V) (*dijkstra.Result, error) {
	w, s, err := g.source(op, src)
	if err != nil {
		return nil, err
	}
	res, err := dijkstra.Dijkstra(w, s)
	if err != nil {
		return nil, dijkstraError(op, err)
	}

	return res, nil
}

func dijkstraError(op string, err error) error {
	if errors.Is(err, dijkstra.ErrNegativeWeight) {
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidWeight, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// allPairs runs Floyd–Warshall after checking both indices.
func (g *Graph[V]) allPairs(op string, start, end int) (*matrix.ShortestPaths, error) {
	w, err := g.view()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n := len(w)
	if start < 0 || start >= n || end < 0 || end >= n {
		return nil, fmt.Errorf("%s(%d,%d): %d vertices: %w", op, start, end, n, ErrVertexNotFound)
	}
	sp, err := matrix.AllPairs(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sp, nil
}

func (g *Graph[V]) allPairsPath(op string, start, end int) ([]int, error) {
	sp, err := g.allPairs(op, start, end)
	if err != nil {
		return nil, err
	}
	path, err := sp.Path(start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNoPath, err)
	}

	return path, nil
}

// mstView returns the view for an MST operation on an undirected graph.
func (g *Graph[V]) mstView(op string) ([][]int64, error) {
	if g.opts.Directed {
		return nil, fmt.Errorf("%s: %w", op, ErrNotUndirected)
	}
	w, err := g.view()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return w, nil
}

func mstError(op string, err error) error {
	switch {
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return fmt.Errorf("%s: %w: %w", op, ErrDisconnected, err)
	case errors.Is(err, prim_kruskal.ErrInvalidGraph):
		// Raw writes through Weight() can break the mirror.
		return fmt.Errorf("%s: %w: %w", op, ErrNotUndirected, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
