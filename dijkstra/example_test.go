package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/mgraph/dijkstra"
	"github.com/katalvlaran/mgraph/matrix"
)

// ExampleDijkstra finds the cheapest route from vertex 0 on a small
// directed table.
func ExampleDijkstra() {
	const x = matrix.NoEdge
	w := [][]int64{
		{x, 1, 4},
		{x, x, 2},
		{x, x, x},
	}
	res, err := dijkstra.Dijkstra(w, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	path, _ := res.PathTo(2)
	fmt.Println(res.Dist, path)
	// Output: [0 1 3] [0 1 2]
}
