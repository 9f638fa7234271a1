package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_UndirectedGraph ensures TopologicalSort rejects undirected graphs.
func TestTopo_UndirectedGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
	assert.ErrorIs(t, err, core.ErrStructural)
}

// TestTopo_EmptyGraph covers a directed graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph(core.WithDirected(true)))
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_Diamond checks every edge goes forward in the order.
func TestTopo_Diamond(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	edges := [][2]string{{"shirt", "tie"}, {"tie", "jacket"}, {"pants", "shoes"}, {"pants", "belt"}, {"belt", "jacket"}, {"shirt", "belt"}}
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1])
	}
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "%s before %s", e[0], e[1])
	}
	assert.Equal(t, []string{"shirt", "tie", "pants", "shoes", "belt", "jacket"}, order)
}

func TestTopo_Cycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")
	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.ErrorIs(t, err, core.ErrCycle)
	assert.Contains(t, err.Error(), "[A B C A]")
}

func TestTopo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(buildChain(3), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, core.ErrCancelled)
}
