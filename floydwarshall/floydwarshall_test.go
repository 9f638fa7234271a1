package floydwarshall_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/floydwarshall"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 1}, {"D", "A", 3}} {
		_, err := g.AddEdge(e.u, e.v, core.WithWeight(e.w))
		require.NoError(t, err)
	}

	return g
}

func TestFloydWarshall_SquareDistances(t *testing.T) {
	res, err := floydwarshall.FloydWarshall(square(t))
	require.NoError(t, err)

	want := [][]float64{
		{0, 1, 3, 3},
		{1, 0, 2, 3},
		{3, 2, 0, 1},
		{3, 3, 1, 0},
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.IDs)
	assert.Equal(t, want, res.Dist)

	path, err := res.Path("A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	d, ok := res.Distance("D", "B")
	assert.True(t, ok)
	assert.Equal(t, 3.0, d)
	assert.True(t, res.Connected)
	assert.Equal(t, 3.0, res.Diameter)
}

func TestFloydWarshall_PathGraphMetrics(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "D")

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 3, "B": 2, "C": 2, "D": 3}, res.Eccentricity)
	assert.Equal(t, 2.0, res.Radius)
	assert.Equal(t, 3.0, res.Diameter)
	assert.Equal(t, []string{"B", "C"}, res.Center)
	assert.Equal(t, []string{"A", "D"}, res.Periphery)
}

func TestFloydWarshall_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	require.NoError(t, g.AddVertex("C"))

	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	assert.False(t, res.Connected)
	assert.Equal(t, map[string]float64{"A": 1, "B": 0, "C": 0}, res.Eccentricity)

	d, ok := res.Distance("B", "A")
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))

	_, err = res.Path("B", "A")
	assert.ErrorIs(t, err, floydwarshall.ErrNoPath)
	_, err = res.Path("A", "Z")
	assert.ErrorIs(t, err, floydwarshall.ErrUnknownVertex)
}

func TestFloydWarshall_NegativeEdgesAndCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", core.WithWeight(4))
	_, _ = g.AddEdge("A", "C", core.WithWeight(2))
	_, _ = g.AddEdge("C", "B", core.WithWeight(-3))
	res, err := floydwarshall.FloydWarshall(g)
	require.NoError(t, err)
	d, _ := res.Distance("A", "B")
	assert.Equal(t, -1.0, d)

	_, _ = g.AddEdge("B", "A", core.WithWeight(0.5))
	_, err = floydwarshall.FloydWarshall(g)
	assert.ErrorIs(t, err, core.ErrCycle)
	var ce *floydwarshall.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "A", ce.Vertex)
}

func TestFloydWarshall_EmptyAndCancelled(t *testing.T) {
	res, err := floydwarshall.FloydWarshall(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, res.Connected)
	assert.Empty(t, res.Center)

	_, err = floydwarshall.FloydWarshall(nil)
	assert.ErrorIs(t, err, floydwarshall.ErrNilGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = floydwarshall.FloydWarshall(square(t), floydwarshall.WithContext(ctx))
	assert.ErrorIs(t, err, core.ErrCancelled)
}
