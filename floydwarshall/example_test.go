package floydwarshall_test

import (
	"fmt"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/floydwarshall"
)

// ExampleFloydWarshall finds the best place for a shared depot on a small road network.
func ExampleFloydWarshall() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("north", "center", core.WithWeight(2))
	_, _ = g.AddEdge("south", "center", core.WithWeight(2))
	_, _ = g.AddEdge("east", "center", core.WithWeight(3))
	_, _ = g.AddEdge("north", "east", core.WithWeight(4))

	res, err := floydwarshall.FloydWarshall(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.Path("south", "east")
	fmt.Println("center:", res.Center, "radius:", res.Radius, "diameter:", res.Diameter)
	fmt.Println("south→east:", path)
	// Output:
	// center: [center] radius: 3 diameter: 5
	// south→east: [south center east]
}
