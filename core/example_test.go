package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, unweighted graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C):
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edges left:", g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B, vertices: [A C]
	// Edges left: 1
}

// ExampleGraph_results shows how algorithms publish namespaced results and
// how consumers read them back through dotted paths.
func ExampleGraph_results() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")

	_ = g.SetVertexResults("A", "graphty.degree", core.Fields{"degree": 1, "degreePct": 1.0})
	v, ok := g.VertexResult("A", "graphty.degree.degreePct")
	fmt.Println(v, ok)

	_, ok = g.VertexResult("B", "graphty.degree.degreePct")
	fmt.Println(ok)

	// Output:
	// 1 true
	// false
}

// ExampleGraph_NeighborsSeq walks the neighbours of a vertex lazily.
func ExampleGraph_NeighborsSeq() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("hub", "b", core.WithWeight(2))
	_, _ = g.AddEdge("hub", "a", core.WithWeight(5))

	for id, e := range g.NeighborsSeq("hub") {
		fmt.Printf("%s %s %g\n", id, e.ID, e.Weight)
	}

	// Output:
	// a e2 5
	// b e1 2
}
