package centrality_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphty/centrality"
	"github.com/katalvlaran/graphty/core"
)

func benchGrid(m int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if i+1 < m {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j))
			}
			if j+1 < m {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1))
			}
		}
	}

	return g
}

// BenchmarkBetweenness_Grid runs Brandes on a 30×30 grid (900 sources).
func BenchmarkBetweenness_Grid(b *testing.B) {
	g := benchGrid(30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Betweenness(g)
	}
}

// BenchmarkPageRank_Grid measures power iteration on a 100×100 grid.
func BenchmarkPageRank_Grid(b *testing.B) {
	g := benchGrid(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.PageRank(g)
	}
}
