package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/dijkstra"
)

// BenchmarkDijkstra_Grid runs Dijkstra on a weighted 100×100 grid.
func BenchmarkDijkstra_Grid(b *testing.B) {
	const M = 100
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if i+1 < M {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j), core.WithWeight(float64(1+(i*j)%7)))
			}
			if j+1 < M {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1), core.WithWeight(float64(1+(i+j)%5)))
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, dijkstra.Source("0_0"))
	}
}
