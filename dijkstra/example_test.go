// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra_triangle() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", core.WithWeight(1))
	_, _ = g.AddEdge("B", "C", core.WithWeight(2))
	_, _ = g.AddEdge("A", "C", core.WithWeight(5))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// dist[C] is 3 via A→B→C, cheaper than the direct edge.
	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", res.Dist["A"], res.Dist["B"], res.Dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleResult_PathTo demonstrates path reconstruction on a directed graph.
func ExampleResult_PathTo() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", core.WithWeight(2))
	_, _ = g.AddEdge("A", "C", core.WithWeight(1))
	_, _ = g.AddEdge("C", "B", core.WithWeight(1))
	_, _ = g.AddEdge("B", "D", core.WithWeight(3))
	_, _ = g.AddEdge("C", "D", core.WithWeight(5))

	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	path, _ := res.PathTo("D")
	fmt.Println(path, res.Dist["D"])
	// Output: [A B D] 5
}
