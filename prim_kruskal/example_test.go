package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
	"github.com/katalvlaran/mgraph/prim_kruskal"
)

// ExampleKruskal builds the MST of a weighted triangle and lists its edges.
func ExampleKruskal() {
	const x = matrix.NoEdge
	w := [][]int64{
		{x, 2, 10},
		{2, x, 3},
		{10, 3, x},
	}
	tree, total, err := prim_kruskal.Kruskal(w)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range matrix.Edges(tree, true) {
		fmt.Printf("%d-%d (%d)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", total)
	// Output:
	// 0-1 (2)
	// 1-2 (3)
	// total: 5
}

// ExamplePrim grows the same tree from vertex 0.
func ExamplePrim() {
	const x = matrix.NoEdge
	w := [][]int64{
		{x, 2, 10},
		{2, x, 3},
		{10, 3, x},
	}
	parent, total, err := prim_kruskal.Prim(w, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(parent, total)
	// Output: [-1 0 1] 5
}
