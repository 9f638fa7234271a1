package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/bfs"
	"github.com/katalvlaran/graphty/core"
)

// square builds the undirected weighted square A-B:1, B-C:2, C-D:1, D-A:3.
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

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SquareLevels checks levels on the four-vertex square, weights ignored.
func TestBFS_SquareLevels(t *testing.T) {
	res, err := bfs.BFS(square(t), "A")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, 2, res.MaxDepth())

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path, "B discovered before D")
}

func TestBFS_UnreachableHasNoResult(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("C", "A")
	require.NoError(t, g.AddVertex("Z"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	_, ok := res.Depth["C"]
	assert.False(t, ok, "C only reaches A against the edge direction")
	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "E"}} {
		_, _ = g.AddEdge(p[0], p[1])
	}

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "E"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E"}, res.Order)
}

func TestBFS_HooksAndAbort(t *testing.T) {
	g := square(t)
	var enq, deq []string
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "D" {
				return stop
			}

			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "D", "C"}, enq)
	assert.Equal(t, []string{"A", "B", "D"}, deq)
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(square(t), "A", bfs.WithContext(ctx))
	assert.Nil(t, res, "no partial result")
	assert.ErrorIs(t, err, core.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)

	steps := 0
	_, err = bfs.BFS(square(t), "A", bfs.WithStepHook(func(_ string, step int) error {
		steps = step
		if step == 2 {
			return errors.New("yield")
		}

		return nil
	}))
	assert.ErrorIs(t, err, core.ErrCancelled)
	assert.Equal(t, 2, steps)
}
