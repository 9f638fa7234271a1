package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphty/builder"
	"github.com/katalvlaran/graphty/core"
)

func build(t *testing.T, gopts []core.GraphOption, bopts []builder.BuilderOption, c builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, c)
	require.NoError(t, err)

	return g
}

func TestTopologySizes(t *testing.T) {
	cases := []struct {
		name     string
		c        builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(5), 5, 4},
		{"wheel", builder.Wheel(5), 5, 8},
		{"complete", builder.Complete(5), 5, 10},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"random full", builder.RandomSparse(4, 1), 4, 6},
		{"random empty", builder.RandomSparse(4, 0), 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, nil, tc.c)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestCompleteDirected(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(3))
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "0"))
}

func TestValidation(t *testing.T) {
	for name, c := range map[string]builder.Constructor{
		"path":      builder.Path(1),
		"cycle":     builder.Cycle(2),
		"star":      builder.Star(1),
		"wheel":     builder.Wheel(3),
		"complete":  builder.Complete(0),
		"bipartite": builder.CompleteBipartite(0, 2),
		"grid":      builder.Grid(2, 0),
		"random":    builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
		assert.ErrorIs(t, err, core.ErrStructural, name)
	}

	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrNilGraph)
}

func TestDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}
	gopts := []core.GraphOption{core.WithWeighted()}
	a := build(t, gopts, opts, builder.RandomSparse(30, 0.2))
	b := build(t, gopts, []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}, builder.RandomSparse(30, 0.2))

	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
		assert.Equal(t, ea[i].Weight, eb[i].Weight)
		assert.GreaterOrEqual(t, ea[i].Weight, 1.0)
		assert.LessOrEqual(t, ea[i].Weight, 9.0)
	}
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))

	g := build(t, nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Path(3))
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	g = build(t, nil, []builder.BuilderOption{builder.WithPartitionPrefix("job", "")}, builder.CompleteBipartite(1, 2))
	assert.Equal(t, []string{"R0", "R1", "job0"}, g.Vertices())

	g = build(t, nil, nil, builder.Grid(2, 2))
	assert.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 0)))

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithUniformWeight(5, 1) })
}

func TestWeights(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithWeighted()}, []builder.BuilderOption{builder.WithConstantWeight(2.5)}, builder.Cycle(4))
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	// Unweighted graphs ignore the weight function.
	g = build(t, nil, []builder.BuilderOption{builder.WithConstantWeight(2.5)}, builder.Cycle(4))
	for _, e := range g.Edges() {
		assert.Equal(t, core.DefaultWeight, e.Weight)
	}
}

func TestParse(t *testing.T) {
	for spec, edges := range map[string]int{
		"path:4":        3,
		"Cycle:4":       4,
		"grid:2,3":      7,
		"bipartite:2,2": 4,
		"random:5,1":    10,
	} {
		c, err := builder.Parse(spec)
		require.NoError(t, err, spec)
		g := build(t, nil, nil, c)
		assert.Equal(t, edges, g.EdgeCount(), spec)
	}

	for _, spec := range []string{"lattice:3", "path", "grid:3", "path:x", "random:3,p"} {
		_, err := builder.Parse(spec)
		assert.ErrorIs(t, err, builder.ErrConstructFailed, spec)
	}
	assert.Contains(t, builder.Generators(), "wheel")
}
