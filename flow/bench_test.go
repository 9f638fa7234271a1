package flow_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/flow"
)

// buildRandomGraph constructs a directed, weighted graph with V vertices and
// roughly p probability of an edge between any ordered pair u→v.
// Edge weights are uniform in [1, maxWeight+1).
func buildRandomGraph(V int, p float64, maxWeight float64, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < V; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				w := r.Float64()*maxWeight + 1.0
				_, _ = g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), core.WithWeight(w))
			}
		}
	}

	return g
}

// BenchmarkFlowAlgorithms measures the three methods on graphs of increasing
// size and density, one sub-benchmark per method.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name      string
		vertices  int
		edgeProb  float64
		maxWeight float64
		seed      int64
	}{
		{"Small", 200, 0.05, 10.0, 42},
		{"Medium", 500, 0.02, 20.0, 4242},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			g := buildRandomGraph(tc.vertices, tc.edgeProb, tc.maxWeight, tc.seed)
			src := "0"
			dst := strconv.Itoa(tc.vertices - 1)
			opts := flow.DefaultOptions()

			for _, method := range methods {
				b.Run(method, func(b *testing.B) {
					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						_, _ = flow.MaxFlow(g, src, dst, method, opts)
					}
				})
			}
		})
	}
}
