package components_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/components"
	"github.com/katalvlaran/graphty/core"
)

func directed(t *testing.T, pairs ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i+1 < len(pairs); i += 2 {
		_, err := g.AddEdge(pairs[i], pairs[i+1])
		require.NoError(t, err)
	}

	return g
}

func TestConnectedComponents(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("C", "D")
	_, _ = g.AddEdge("D", "E")
	require.NoError(t, g.AddVertex("Z"))

	res, err := components.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"C", "D", "E"}, {"Z"}}, res.Components)
	assert.Equal(t, 3, res.Count())
	assert.Equal(t, 1, res.Membership["E"])
}

func TestConnectedComponents_DirectedIsWeak(t *testing.T) {
	g := directed(t, "B", "A", "C", "A")
	res, err := components.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, res.Components)
}

func TestStronglyConnected(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  [][]string
	}{
		{"dag", []string{"A", "B", "B", "C"}, [][]string{{"A"}, {"B"}, {"C"}}},
		{"cycle", []string{"A", "B", "B", "C", "C", "A"}, [][]string{{"A", "B", "C"}}},
		{
			"two cycles joined one way",
			[]string{"A", "B", "B", "A", "B", "C", "C", "D", "D", "C"},
			[][]string{{"A", "B"}, {"C", "D"}},
		},
		{
			"cycle with tail",
			[]string{"X", "A", "A", "B", "B", "C", "C", "A", "C", "Y"},
			[][]string{{"A", "B", "C"}, {"X"}, {"Y"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := components.StronglyConnected(directed(t, tc.pairs...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Components)
		})
	}
}

func TestStronglyConnected_UndirectedMatchesConnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("C", "D")
	scc, err := components.StronglyConnected(g)
	require.NoError(t, err)
	cc, err := components.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, cc.Components, scc.Components)
}

func TestComponents_Errors(t *testing.T) {
	_, err := components.ConnectedComponents(nil)
	assert.ErrorIs(t, err, core.ErrStructural)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = components.StronglyConnected(directed(t, "A", "B"), components.WithContext(ctx))
	assert.ErrorIs(t, err, core.ErrCancelled)
}
