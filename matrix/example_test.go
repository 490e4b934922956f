package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mgraph/matrix"
)

// ExampleAllPairs builds the triangle A–B(2), B–C(3), A–C(10) and shows that
// the shortest A→C route goes through B.
func ExampleAllPairs() {
	m, _ := matrix.NewAdjacencyMatrix(3, false)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 2, 3)
	_ = m.Set(0, 2, 10)

	view, _ := m.View(3)
	sp, err := matrix.AllPairs(view)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := sp.Path(0, 2)
	cost, _ := sp.Cost(0, 2)
	fmt.Println(path, cost)
	// Output: [0 1 2] 5
}
