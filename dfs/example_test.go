package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/mgraph/dfs"
	"github.com/katalvlaran/mgraph/matrix"
)

// ExampleTopologicalSort orders a small build pipeline.
func ExampleTopologicalSort() {
	// fetch(0) → compile(1) → test(2); fetch → lint(3) → test
	m, _ := matrix.NewAdjacencyMatrix(4, true)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 2, 1)
	_ = m.Set(0, 3, 1)
	_ = m.Set(3, 2, 1)
	view, _ := m.View(4)

	order, err := dfs.TopologicalSort(view)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [0 1 3 2]
}
