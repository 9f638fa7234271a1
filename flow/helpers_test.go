package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/flow"
)

const delta = 1e-9

var methods = []string{flow.MethodEdmondsKarp, flow.MethodFordFulkerson, flow.MethodDinic}

type arc struct {
	u, v string
	c    float64
}

// weighted builds a weighted graph from (from, to, capacity) triples.
func weighted(directed bool, edges ...arc) *core.Graph {
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	for _, e := range edges {
		_, _ = g.AddEdge(e.u, e.v, core.WithWeight(e.c))
	}

	return g
}

// classic is the CLRS network with max flow 23 from s to t.
func classic() *core.Graph {
	return weighted(true,
		arc{"s", "v1", 16}, arc{"s", "v2", 13},
		arc{"v1", "v3", 12}, arc{"v2", "v1", 4},
		arc{"v2", "v4", 14}, arc{"v3", "v2", 9},
		arc{"v3", "t", 20}, arc{"v4", "v3", 7},
		arc{"v4", "t", 4},
	)
}

// assertFeasible checks capacity bounds and conservation of res on g.
func assertFeasible(t *testing.T, g *core.Graph, res *flow.Result) {
	t.Helper()
	balance := make(map[string]float64)
	for _, e := range g.Edges() {
		f := res.EdgeFlow[e.ID]
		c := g.Weight(e)
		if g.Directed() {
			require.GreaterOrEqual(t, f, -delta, "edge %s", e.ID)
		} else {
			require.GreaterOrEqual(t, f, -c-delta, "edge %s", e.ID)
		}
		require.LessOrEqual(t, f, c+delta, "edge %s", e.ID)
		balance[e.From] -= f
		balance[e.To] += f
	}
	for _, id := range g.Vertices() {
		switch id {
		case res.Source:
			require.InDelta(t, -res.MaxFlow, balance[id], delta)
		case res.Sink:
			require.InDelta(t, res.MaxFlow, balance[id], delta)
		default:
			require.InDelta(t, 0, balance[id], delta, "vertex %s", id)
		}
	}
}
