package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgraph/dfs"
	"github.com/katalvlaran/mgraph/dijkstra"
	"github.com/katalvlaran/mgraph/graph"
	"github.com/katalvlaran/mgraph/matrix"
	"github.com/katalvlaran/mgraph/prim_kruskal"
)

// square is the undirected 4-cycle A–B–C–D–A with unit weights.
func square(t *testing.T) *graph.Graph[string] {
	t.Helper()
	g := newGraph(t, []string{"A", "B", "C", "D"})
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "D"))
	require.NoError(t, g.AddEdge("D", "A"))

	return g
}

// TestTriangleScenario covers connectivity, all-pairs routing and both MSTs
// on A–B=2, B–C=3, A–C=10.
func TestTriangleScenario(t *testing.T) {
	g := triangle(t)

	ok, err := g.AreConnected("A", "C")
	require.NoError(t, err)
	assert.True(t, ok)

	dist, err := g.FloydWarshall()
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 2, 5},
		{2, 0, 3},
		{5, 3, 0},
	}, dist)

	desc, err := g.FloydWarshallPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "A -> B -> C", desc)
	desc, err = g.FloydWarshallPath(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "C -> B -> A", desc)
	desc, err = g.FloydWarshallPath(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "B", desc)

	cost, err := g.FloydWarshallCost(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cost)

	tree, total, err := g.Kruskal()
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, [][]int64{
		{x, 2, x},
		{2, x, 3},
		{x, 3, x},
	}, tree)

	parent, total, err := g.Prim()
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []int{-1, 0, 1}, parent)

	ds, err := g.KruskalSet()
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Count())
	assert.Equal(t, 3, ds.Len())
}

// TestEmptyGraphScenario checks that every algorithm reports "no result".
func TestEmptyGraphScenario(t *testing.T) {
	g := newGraph(t, nil)

	_, err := g.BFS("A")
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.DFS("A")
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.Dijkstra("A")
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.DijkstraPaths("A")
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.FloydWarshall()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.FloydWarshallPath(0, 0)
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.FloydWarshallCost(0, 0)
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, _, err = g.Kruskal()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.KruskalSet()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, _, err = g.Prim()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.TopologicalSort()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = g.HasCycle()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
}

func TestTraversals(t *testing.T) {
	g := square(t)

	order, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, order)

	order, err = g.DFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)

	// The supplied start vertex is honored.
	order, err = g.BFS("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D", "A"}, order)

	order, err = g.DFS("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A", "D"}, order)

	_, err = g.BFS("Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.DFS("Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestTraversals_ReachableOnly(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, graph.WithDirected())
	require.NoError(t, g.AddEdge("B", "A"))
	require.NoError(t, g.AddEdge("A", "C"))

	order, err := g.BFS("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, order)

	order, err = g.DFS("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, order)
}

func TestDijkstra(t *testing.T) {
	g := triangle(t)

	dist, err := g.Dijkstra("A")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 5}, dist)

	paths, err := g.DijkstraPaths("A")
	require.NoError(t, err)
	assert.Equal(t, map[int][]int{
		0: {0},
		1: {0, 1},
		2: {0, 1, 2},
	}, paths)

	path, cost, err := g.ShortestPath("C", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, path)
	assert.Equal(t, int64(5), cost)

	_, err = g.Dijkstra("Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, _, err = g.ShortestPath("A", "Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, graph.WithDirected())
	require.NoError(t, g.AddWeightedEdge("A", "B", -3))

	_, err := g.Dijkstra("A")
	assert.ErrorIs(t, err, graph.ErrInvalidWeight)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = g.DijkstraPaths("A")
	assert.ErrorIs(t, err, graph.ErrInvalidWeight)
}

func TestDisconnected(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"})
	require.NoError(t, g.AddEdge("A", "B"))

	dist, err := g.Dijkstra("A")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, x}, dist)

	paths, err := g.DijkstraPaths("A")
	require.NoError(t, err)
	assert.Empty(t, paths[2])
	assert.NotNil(t, paths[2])

	_, _, err = g.ShortestPath("A", "C")
	assert.ErrorIs(t, err, graph.ErrNoPath)

	_, err = g.FloydWarshallPath(0, 2)
	assert.ErrorIs(t, err, graph.ErrNoPath)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
	_, err = g.FloydWarshallCost(2, 0)
	assert.ErrorIs(t, err, graph.ErrNoPath)

	_, _, err = g.Kruskal()
	assert.ErrorIs(t, err, graph.ErrDisconnected)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = g.Prim()
	assert.ErrorIs(t, err, graph.ErrDisconnected)

	ds, err := g.KruskalSet()
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Count())
	same, err := ds.Connected(0, 1)
	require.NoError(t, err)
	assert.True(t, same)
	same, err = ds.Connected(0, 2)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestFloydWarshall_IndexErrors(t *testing.T) {
	g := triangle(t)
	_, err := g.FloydWarshallPath(0, 3)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.FloydWarshallCost(-1, 0)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	g := newGraph(t, []string{"A", "B"})
	require.NoError(t, g.AddWeightedEdge("A", "B", -1))

	_, err := g.FloydWarshall()
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
	_, err = g.FloydWarshallCost(0, 1)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

func TestMST_Directed(t *testing.T) {
	g := newGraph(t, []string{"A", "B"}, graph.WithDirected())
	require.NoError(t, g.AddWeightedEdge("A", "B", 4))

	_, _, err := g.Kruskal()
	assert.ErrorIs(t, err, graph.ErrNotUndirected)
	_, err = g.KruskalSet()
	assert.ErrorIs(t, err, graph.ErrNotUndirected)
	_, _, err = g.Prim()
	assert.ErrorIs(t, err, graph.ErrNotUndirected)
}

func TestMST_BrokenMirror(t *testing.T) {
	g := triangle(t)
	g.Weight()[0][1] = 7

	_, _, err := g.Kruskal()
	assert.ErrorIs(t, err, graph.ErrNotUndirected)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestTopologicalSortAndCycles(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"}, graph.WithDirected())
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("A", "B"))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)

	cyc, err := g.HasCycle()
	require.NoError(t, err)
	assert.False(t, cyc)

	require.NoError(t, g.AddEdge("C", "A"))
	_, err = g.TopologicalSort()
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	cyc, err = g.HasCycle()
	require.NoError(t, err)
	assert.True(t, cyc)

	// An undirected path has no cycle; closing the triangle adds one.
	u := newGraph(t, []string{"A", "B", "C"})
	require.NoError(t, u.AddEdge("A", "B"))
	require.NoError(t, u.AddEdge("B", "C"))
	cyc, err = u.HasCycle()
	require.NoError(t, err)
	assert.False(t, cyc)
	require.NoError(t, u.AddEdge("C", "A"))
	cyc, err = u.HasCycle()
	require.NoError(t, err)
	assert.True(t, cyc)
}

// TestGenericVertexType runs the facade over a struct vertex type.
func TestGenericVertexType(t *testing.T) {
	type city struct {
		Name string
		Zip  int
	}
	g, err := graph.New[city](graph.WithCapacity(3))
	require.NoError(t, err)
	kyiv, lviv := city{"Kyiv", 1001}, city{"Lviv", 79000}
	_, err = g.AddVertex(kyiv)
	require.NoError(t, err)
	_, err = g.AddVertex(lviv)
	require.NoError(t, err)
	require.NoError(t, g.AddWeightedEdge(kyiv, lviv, 540))

	order, err := g.BFS(lviv)
	require.NoError(t, err)
	assert.Equal(t, []city{lviv, kyiv}, order)

	desc, err := g.FloydWarshallPath(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "{Kyiv 1001} -> {Lviv 79000}", desc)
}

// TestMaxWeightChain sums the heaviest accepted weights along a path; every
// total must be exact and the far end must stay reachable.
func TestMaxWeightChain(t *testing.T) {
	g := newGraph(t, []string{"A", "B", "C"})
	require.NoError(t, g.AddWeightedEdge("A", "B", graph.MaxWeight))
	require.NoError(t, g.AddWeightedEdge("B", "C", graph.MaxWeight))
	want := 2 * graph.MaxWeight

	_, total, err := g.Kruskal()
	require.NoError(t, err)
	assert.Equal(t, want, total)

	_, total, err = g.Prim()
	require.NoError(t, err)
	assert.Equal(t, want, total)

	path, err := g.FloydWarshallPath(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "A -> B -> C", path)
	cost, err := g.FloydWarshallCost(0, 2)
	require.NoError(t, err)
	assert.Equal(t, want, cost)

	dist, err := g.Dijkstra("A")
	require.NoError(t, err)
	assert.Equal(t, want, dist[2])
}
