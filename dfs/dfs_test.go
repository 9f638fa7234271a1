package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDFS_ChainOrderAndTimestamps(t *testing.T) {
	g := buildChain(4)
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)

	assert.Equal(t, []string{"N3", "N2", "N1", "N0"}, res.Order)
	assert.Equal(t, map[string]int{"N0": 1, "N1": 2, "N2": 3, "N3": 4}, res.Discovery)
	assert.Equal(t, map[string]int{"N3": 5, "N2": 6, "N1": 7, "N0": 8}, res.Finish)
	assert.Equal(t, 3, res.Depth["N3"])
	assert.Equal(t, "N2", res.Parent["N3"])
	_, isChild := res.Parent["N0"]
	assert.False(t, isChild)
}

// TestDFS_ParenthesisProperty checks that discovery/finish intervals nest.
func TestDFS_ParenthesisProperty(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		_, _ = g.AddEdge(p[0], p[1])
	}
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	seen := map[int]bool{}
	for v := range res.Visited {
		d, f := res.Discovery[v], res.Finish[v]
		assert.Less(t, d, f, v)
		assert.False(t, seen[d] || seen[f], "timestamps are unique")
		seen[d], seen[f] = true, true
		if p, ok := res.Parent[v]; ok {
			assert.Less(t, res.Discovery[p], d)
			assert.Less(t, f, res.Finish[p])
		}
	}
	assert.Len(t, seen, 10)
}

func TestDFS_FullTraversalForest(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("B", "A")
	_, _ = g.AddEdge("C", "D")
	require.NoError(t, g.AddVertex("E"))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Len(t, res.Visited, 5)
	assert.Equal(t, 10, res.Finish["E"])
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := buildChain(5)
	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N2", "N1", "N0"}, res.Order)

	res, err = dfs.DFS(g, "N0", dfs.WithFilterNeighbor(func(id string) bool { return id != "N2" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N0"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HooksAbort(t *testing.T) {
	g := buildChain(3)
	var visits, exits []string
	res, err := dfs.DFS(g, "N0",
		dfs.WithOnVisit(func(id string) error { visits = append(visits, id); return nil }),
		dfs.WithOnExit(func(id string) error { exits = append(exits, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, visits)
	assert.Equal(t, res.Order, exits)

	boom := errors.New("boom")
	res, err = dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N1" {
			return boom
		}

		return nil
	}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.DFS(buildChain(10), "N0", dfs.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrCancelled)
}
