package community_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/community"
	"github.com/katalvlaran/graphty/components"
	"github.com/katalvlaran/graphty/core"
)

type detector func(*core.Graph, ...community.Option) (*community.Result, error)

var detectors = map[string]detector{
	"louvain":           community.Louvain,
	"leiden":            community.Leiden,
	"girvan-newman":     community.GirvanNewman,
	"label-propagation": community.LabelPropagation,
}

// twoTriangles joins triangles a1a2a3 and b1b2b3 with the bridge a3–b1.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"a1", "a2"}, {"a2", "a3"}, {"a3", "a1"},
		{"a3", "b1"},
		{"b1", "b2"}, {"b2", "b3"}, {"b3", "b1"},
	} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// ringOfCliques links k cliques of size s in a ring.
func ringOfCliques(t *testing.T, k, s int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	id := func(c, i int) string { return fmt.Sprintf("c%d_%d", c, i) }
	for c := 0; c < k; c++ {
		for i := 0; i < s; i++ {
			for j := i + 1; j < s; j++ {
				_, err := g.AddEdge(id(c, i), id(c, j))
				require.NoError(t, err)
			}
		}
		_, err := g.AddEdge(id(c, 0), id((c+1)%k, s-1))
		require.NoError(t, err)
	}

	return g
}

// assertPartition checks every vertex sits in exactly one community and
// numbering is dense and ordered by smallest member.
func assertPartition(t *testing.T, g *core.Graph, res *community.Result) {
	t.Helper()
	seen := map[string]int{}
	for c, members := range res.Communities {
		require.NotEmpty(t, members, "community %d is empty", c)
		for _, v := range members {
			seen[v]++
			assert.Equal(t, c, res.Membership[v])
		}
		if c > 0 {
			assert.Less(t, res.Communities[c-1][0], members[0])
		}
	}
	for _, v := range g.Vertices() {
		assert.Equal(t, 1, seen[v], "vertex %s", v)
	}
	assert.Len(t, res.Membership, g.VertexCount())
}

func TestModularity(t *testing.T) {
	g := twoTriangles(t)
	split := map[string]int{"a1": 0, "a2": 0, "a3": 0, "b1": 1, "b2": 1, "b3": 1}
	q, err := community.Modularity(g, split, 1)
	require.NoError(t, err)
	// Each side: 6/14 internal, (7/14)² expected.
	assert.InDelta(t, 2*(6.0/14-0.25), q, 1e-9)

	whole := map[string]int{"a1": 0, "a2": 0, "a3": 0, "b1": 0, "b2": 0, "b3": 0}
	q, err = community.Modularity(g, whole, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, q, 1e-9)

	delete(split, "b3")
	_, err = community.Modularity(g, split, 1)
	assert.ErrorIs(t, err, community.ErrIncompletePartition)
	_, err = community.Modularity(g, whole, 0)
	assert.ErrorIs(t, err, community.ErrBadParameter)

	q, err = community.Modularity(core.NewGraph(), map[string]int{}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, q)
}

func TestDetectors_TwoTriangles(t *testing.T) {
	want := [][]string{{"a1", "a2", "a3"}, {"b1", "b2", "b3"}}
	for _, name := range []string{"louvain", "leiden", "girvan-newman"} {
		t.Run(name, func(t *testing.T) {
			g := twoTriangles(t)
			res, err := detectors[name](g)
			require.NoError(t, err)
			assertPartition(t, g, res)
			assert.Equal(t, want, res.Communities)
			assert.InDelta(t, 2*(6.0/14-0.25), res.Modularity, 1e-9)
		})
	}
}

func TestDetectors_Partition(t *testing.T) {
	for name, run := range detectors {
		t.Run(name, func(t *testing.T) {
			g := ringOfCliques(t, 4, 4)
			res, err := run(g)
			require.NoError(t, err)
			assertPartition(t, g, res)

			again, err := run(g)
			require.NoError(t, err)
			assert.Equal(t, res.Membership, again.Membership, "deterministic")
		})
	}
}

func TestLouvain_RingOfCliques(t *testing.T) {
	g := ringOfCliques(t, 4, 4)
	res, err := community.Louvain(g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Count(), 2)
	assert.Greater(t, res.Modularity, 0.3)
	assert.GreaterOrEqual(t, res.Levels, 1)
}

func TestLeiden_CommunitiesConnected(t *testing.T) {
	graphs := map[string]*core.Graph{
		"ring":          ringOfCliques(t, 5, 3),
		"two triangles": twoTriangles(t),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			for _, opt := range []community.Option{community.WithSeed(7), community.WithResolution(2)} {
				res, err := community.Leiden(g, opt)
				require.NoError(t, err)
				assertPartition(t, g, res)
				for _, members := range res.Communities {
					sub := core.NewGraph()
					in := map[string]bool{}
					for _, v := range members {
						in[v] = true
						require.NoError(t, sub.AddVertex(v))
					}
					for _, e := range g.Edges() {
						if in[e.From] && in[e.To] {
							_, err = sub.AddEdge(e.From, e.To)
							require.NoError(t, err)
						}
					}
					cc, err := components.ConnectedComponents(sub)
					require.NoError(t, err)
					assert.Equal(t, 1, cc.Count(), "community %v is disconnected", members)
				}
			}
		})
	}
}

func TestGirvanNewman_TargetCount(t *testing.T) {
	g := twoTriangles(t)
	res, err := community.GirvanNewman(g, community.WithTargetCount(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count())
	assert.Equal(t, 1, res.Iterations, "only the bridge is removed")

	res, err = community.GirvanNewman(g, community.WithTargetCount(10))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Count(), "runs out of edges")
}

func TestLabelPropagation(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a1", "a2"}, {"a2", "a3"}, {"a3", "a1"}, {"b1", "b2"}, {"b2", "b3"}, {"b3", "b1"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	require.NoError(t, g.AddVertex("solo"))

	res, err := community.LabelPropagation(g)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, [][]string{{"a1", "a2", "a3"}, {"b1", "b2", "b3"}, {"solo"}}, res.Communities)

	res, err = community.LabelPropagation(g, community.WithMaxIterations(1))
	require.NoError(t, err)
	assert.False(t, res.Converged)
}

func TestCommunity_DirectedTreatedAsUndirected(t *testing.T) {
	d := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"a1", "a2"}, {"a2", "a3"}, {"a3", "a1"}, {"a3", "b1"}, {"b1", "b2"}, {"b2", "b3"}, {"b3", "b1"}} {
		_, _ = d.AddEdge(e[0], e[1])
	}
	res, err := community.Louvain(d)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a1", "a2", "a3"}, {"b1", "b2", "b3"}}, res.Communities)
}

func TestCommunity_Errors(t *testing.T) {
	_, err := community.Louvain(nil)
	assert.ErrorIs(t, err, community.ErrGraphNil)
	_, err = community.Leiden(twoTriangles(t), community.WithResolution(-1))
	assert.ErrorIs(t, err, core.ErrNumeric)

	w := core.NewGraph(core.WithWeighted())
	_, _ = w.AddEdge("x", "y", core.WithWeight(-1))
	_, err = community.LabelPropagation(w)
	assert.ErrorIs(t, err, community.ErrNegativeWeight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = community.Louvain(twoTriangles(t), community.WithContext(ctx))
	assert.ErrorIs(t, err, core.ErrCancelled)
}
