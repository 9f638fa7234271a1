package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphty/builder"
	"github.com/katalvlaran/graphty/core"
)

// ExampleBuildGraph composes a wheel from a cycle plus a hub.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithExcelColumnIDs(), builder.WithConstantWeight(2)},
		builder.Wheel(5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount(), "edges")
	// Output:
	// [A B C Center D]
	// 8 edges
}
