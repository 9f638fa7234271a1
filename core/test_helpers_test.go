// Package core_test contains test helpers for graphty/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// buildSquare builds the undirected weighted square A-B:1, B-C:2, C-D:1, D-A:3.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, VertexA, VertexB, Weight1)
	mustEdge(t, g, VertexB, VertexC, Weight2)
	mustEdge(t, g, VertexC, VertexD, Weight1)
	mustEdge(t, g, VertexD, VertexA, Weight3)

	return g
}

// mustEdge adds from→to with weight w and fails the test on error.
func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, core.WithWeight(w))
	require.NoError(t, err, "AddEdge(%s,%s,%g)", from, to, w)

	return eid
}

// collect drains a vertex sequence into IDs.
func collect(g *core.Graph) []string {
	var ids []string
	for v := range g.Nodes() {
		ids = append(ids, v.ID)
	}

	return ids
}
