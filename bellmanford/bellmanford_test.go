package bellmanford_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/bellmanford"
	"github.com/katalvlaran/graphty/core"
)

type wedge struct {
	u, v string
	w    float64
}

func build(t *testing.T, directed bool, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, core.WithWeight(e.w))
		require.NoError(t, err)
	}

	return g
}

func TestBellmanFord_Validation(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil)
	assert.ErrorIs(t, err, bellmanford.ErrEmptySource)
	_, err = bellmanford.BellmanFord(nil, bellmanford.Source("A"))
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)
	_, err = bellmanford.BellmanFord(core.NewGraph(), bellmanford.Source("A"))
	assert.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
}

func TestBellmanFord_NegativeEdgesNoCycle(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 4}, wedge{"A", "C", 2}, wedge{"C", "B", -3}, wedge{"B", "D", 1})
	res, err := bellmanford.BellmanFord(g, bellmanford.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": -1, "C": 2, "D": 0}, res.Dist)
	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, path)
	assert.LessOrEqual(t, res.Rounds, 3)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := build(t, true, wedge{"S", "A", 1}, wedge{"A", "B", 1}, wedge{"B", "C", -3}, wedge{"C", "A", 1})
	res, err := bellmanford.BellmanFord(g, bellmanford.Source("S"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrCycle)

	var nce *bellmanford.NegativeCycleError
	require.True(t, errors.As(err, &nce))
	assert.Equal(t, []string{"A", "B", "C", "A"}, nce.Cycle)
	assert.Contains(t, err.Error(), "A→B→C→A")
}

func TestBellmanFord_UnreachableCycleIgnored(t *testing.T) {
	g := build(t, true, wedge{"S", "A", 2}, wedge{"X", "Y", -5}, wedge{"Y", "X", 1})
	res, err := bellmanford.BellmanFord(g, bellmanford.Source("S"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"S": 0, "A": 2}, res.Dist)
	assert.False(t, res.Reachable("X"))
	_, err = res.PathTo("Y")
	assert.ErrorIs(t, err, bellmanford.ErrNoPath)
}

func TestBellmanFord_UndirectedNegativeEdgeIsCycle(t *testing.T) {
	g := build(t, false, wedge{"A", "B", -1})
	_, err := bellmanford.BellmanFord(g, bellmanford.Source("A"))
	assert.ErrorIs(t, err, core.ErrCycle)
}

func TestBellmanFord_SquareEarlyExit(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 2}, wedge{"C", "D", 1}, wedge{"D", "A", 3})
	res, err := bellmanford.BellmanFord(g, bellmanford.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 3}, res.Dist)
	assert.Less(t, res.Rounds, 3, "converges before V-1 rounds")
}

func TestBellmanFord_Cancelled(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"B", "C", 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bellmanford.BellmanFord(g, bellmanford.Source("A"), bellmanford.WithContext(ctx))
	assert.ErrorIs(t, err, core.ErrCancelled)
}
