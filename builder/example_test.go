package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mgraph/builder"
	"github.com/katalvlaran/mgraph/graph"
)

// ExampleBuildGraph builds a weighted 5-cycle with letter IDs and routes across it.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]graph.Option{graph.WithCapacity(5)},
		[]builder.BuilderOption{builder.WithExcelColumnIDs(), builder.WithConstantWeight(2)},
		builder.Cycle(5),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	path, cost, _ := g.ShortestPath("A", "D")
	fmt.Println(path, cost)
	// Output: [A E D] 4
}
