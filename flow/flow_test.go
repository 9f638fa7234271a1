package flow_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/flow"
	"github.com/katalvlaran/graphty/internal/ctxlog"
)

// FlowSuite runs every scenario against all three methods.
type FlowSuite struct {
	suite.Suite
}

func (s *FlowSuite) each(fn func(method string)) {
	for _, m := range methods {
		s.Run(m, func() { fn(m) })
	}
}

// TestSimplePath: A→B (cap=5) => maxFlow = 5, forward arc saturated.
func (s *FlowSuite) TestSimplePath() {
	s.each(func(method string) {
		g := weighted(true, arc{"A", "B", 5})
		res, err := flow.MaxFlow(g, "A", "B", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 5.0, res.MaxFlow)
		require.Equal(s.T(), 1, res.Augmentations)
		require.False(s.T(), res.Residual.HasEdge("A", "B"), "forward exhausted")
		back, ok := res.Residual.EdgeBetween("B", "A")
		require.True(s.T(), ok, "reverse edge carries flow")
		require.Equal(s.T(), 5.0, back.Weight)
	})
}

// TestClassic: textbook network with max flow 23.
func (s *FlowSuite) TestClassic() {
	s.each(func(method string) {
		g := classic()
		res, err := flow.MaxFlow(g, "s", "t", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.InDelta(s.T(), 23.0, res.MaxFlow, delta)
		assertFeasible(s.T(), g, res)
	})
}

// TestMultiPath: two routes => flow sums them.
func (s *FlowSuite) TestMultiPath() {
	s.each(func(method string) {
		g := weighted(true, arc{"A", "B", 3}, arc{"A", "C", 4}, arc{"C", "B", 2})
		res, err := flow.MaxFlow(g, "A", "B", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 5.0, res.MaxFlow, "flow should combine both paths (3 + 2)")
	})
}

// TestAntiparallel keeps the two directions as separate capacities.
func (s *FlowSuite) TestAntiparallel() {
	s.each(func(method string) {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
		forward, _ := g.AddEdge("A", "B", core.WithWeight(3))
		backward, _ := g.AddEdge("B", "A", core.WithWeight(2))
		res, err := flow.MaxFlow(g, "A", "B", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 3.0, res.MaxFlow)
		require.Equal(s.T(), 3.0, res.EdgeFlow[forward])
		require.Equal(s.T(), 0.0, res.EdgeFlow[backward])
	})
}

// TestUndirected: capacities apply both ways and flow is signed.
func (s *FlowSuite) TestUndirected() {
	s.each(func(method string) {
		g := core.NewGraph(core.WithWeighted())
		ab, _ := g.AddEdge("A", "B", core.WithWeight(3))
		cb, _ := g.AddEdge("C", "B", core.WithWeight(2))
		ac, _ := g.AddEdge("A", "C", core.WithWeight(1))
		res, err := flow.MaxFlow(g, "A", "C", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 3.0, res.MaxFlow)
		require.Equal(s.T(), 2.0, res.EdgeFlow[ab])
		require.Equal(s.T(), -2.0, res.EdgeFlow[cb], "flow runs B→C against C→B orientation")
		require.Equal(s.T(), 1.0, res.EdgeFlow[ac])
		assertFeasible(s.T(), g, res)
	})
}

// TestUnweighted treats every edge as capacity 1.
func (s *FlowSuite) TestUnweighted() {
	s.each(func(method string) {
		g := core.NewGraph(core.WithDirected(true))
		_, _ = g.AddEdge("s", "a")
		_, _ = g.AddEdge("s", "b")
		_, _ = g.AddEdge("a", "t")
		_, _ = g.AddEdge("b", "t")
		_, _ = g.AddEdge("a", "b")
		res, err := flow.MaxFlow(g, "s", "t", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 2.0, res.MaxFlow)
	})
}

// TestZeroCapacityAndEpsilon: zero and sub-epsilon capacities carry nothing.
func (s *FlowSuite) TestZeroCapacityAndEpsilon() {
	s.each(func(method string) {
		g := weighted(true, arc{"X", "Y", 0})
		res, err := flow.MaxFlow(g, "X", "Y", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 0.0, res.MaxFlow)

		g = weighted(true, arc{"U", "V", 1})
		opts := flow.DefaultOptions()
		opts.Epsilon = 2
		res, err = flow.MaxFlow(g, "U", "V", method, opts)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 0.0, res.MaxFlow)
	})
}

// TestSelfLoopIgnored: loops never carry flow.
func (s *FlowSuite) TestSelfLoopIgnored() {
	s.each(func(method string) {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
		loop, _ := g.AddEdge("A", "A", core.WithWeight(5))
		_, _ = g.AddEdge("A", "B", core.WithWeight(2))
		res, err := flow.MaxFlow(g, "A", "B", method, flow.DefaultOptions())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 2.0, res.MaxFlow)
		require.Equal(s.T(), 0.0, res.EdgeFlow[loop])
	})
}

// TestNegativeCapacity yields EdgeError.
func (s *FlowSuite) TestNegativeCapacity() {
	s.each(func(method string) {
		g := weighted(true, arc{"X", "Y", -1})
		_, err := flow.MaxFlow(g, "X", "Y", method, flow.DefaultOptions())
		var ee flow.EdgeError
		require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
		require.Equal(s.T(), "X", ee.From)
		require.Equal(s.T(), "Y", ee.To)
		require.Equal(s.T(), -1.0, ee.Cap)
		require.ErrorIs(s.T(), err, core.ErrNumeric)
	})
}

// TestEndpointErrors covers missing, equal and nil inputs.
func (s *FlowSuite) TestEndpointErrors() {
	s.each(func(method string) {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
		_ = g.AddVertex("A")
		opts := flow.DefaultOptions()

		_, err := flow.MaxFlow(g, "X", "A", method, opts)
		require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)
		require.ErrorIs(s.T(), err, core.ErrNotFound)

		_, err = flow.MaxFlow(g, "A", "Z", method, opts)
		require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

		_, err = flow.MaxFlow(g, "A", "A", method, opts)
		require.ErrorIs(s.T(), err, flow.ErrSameEndpoints)
		require.ErrorIs(s.T(), err, core.ErrStructural)

		_, err = flow.MaxFlow(nil, "A", "B", method, opts)
		require.ErrorIs(s.T(), err, flow.ErrGraphNil)
	})
}

// TestCancellation: a cancelled context stops before the first search.
func (s *FlowSuite) TestCancellation() {
	s.each(func(method string) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		opts := flow.DefaultOptions()
		opts.Ctx = ctx
		_, err := flow.MaxFlow(classic(), "s", "t", method, opts)
		require.ErrorIs(s.T(), err, core.ErrCancelled)
		require.ErrorIs(s.T(), err, context.Canceled)
	})
}

// TestStepHook: the hook sees the method as phase and can stop the run.
func (s *FlowSuite) TestStepHook() {
	s.each(func(method string) {
		var calls int
		opts := flow.DefaultOptions()
		opts.StepHook = func(phase string, step int) error {
			require.Equal(s.T(), method, phase)
			calls = step
			return nil
		}
		res, err := flow.MaxFlow(weighted(true, arc{"A", "B", 7}), "A", "B", method, opts)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 7.0, res.MaxFlow)
		require.Equal(s.T(), 2, calls, "one augmentation plus the failed search")

		stop := errors.New("yield")
		opts.StepHook = func(string, int) error { return stop }
		_, err = flow.MaxFlow(classic(), "s", "t", method, opts)
		require.ErrorIs(s.T(), err, core.ErrCancelled)
		require.ErrorIs(s.T(), err, stop)
	})
}

// TestRandomAgreement: all methods agree, flows are feasible and the cut
// value equals the flow value.
func (s *FlowSuite) TestRandomAgreement() {
	for seed := int64(1); seed <= 5; seed++ {
		g := buildRandomGraph(30, 0.15, 10, seed)
		sink := strconv.Itoa(29)
		var want float64
		for i, method := range methods {
			res, err := flow.MaxFlow(g, "0", sink, method, flow.DefaultOptions())
			require.NoError(s.T(), err)
			assertFeasible(s.T(), g, res)
			if i == 0 {
				want = res.MaxFlow
			}
			require.InDelta(s.T(), want, res.MaxFlow, 1e-6, "seed %d method %s", seed, method)

			cut, err := flow.MinCut(g, "0", sink, method, flow.DefaultOptions())
			require.NoError(s.T(), err)
			require.InDelta(s.T(), want, cut.Value, 1e-6)
		}
	}
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

func TestMaxFlow_UnknownMethod(t *testing.T) {
	_, err := flow.MaxFlow(classic(), "s", "t", "push-relabel", flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrUnknownMethod)
	require.ErrorIs(t, err, core.ErrNotFound)

	res, err := flow.MaxFlow(classic(), "s", "t", "", flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, flow.MethodEdmondsKarp, res.Method)
}

// TestDinic_LevelRebuildInterval ensures forced rebuilds do not change the value.
func TestDinic_LevelRebuildInterval(t *testing.T) {
	g := weighted(true,
		arc{"S", "A", 2}, arc{"S", "B", 1}, arc{"A", "C", 1},
		arc{"B", "C", 1}, arc{"C", "T", 2},
	)

	opts := flow.DefaultOptions()
	opts.LevelRebuildInterval = 1
	forced, err := flow.Dinic(g, "S", "T", opts)
	require.NoError(t, err)

	plain, err := flow.Dinic(g, "S", "T", flow.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, plain.MaxFlow, forced.MaxFlow)
	require.Equal(t, 2.0, plain.MaxFlow)
}

// TestVerboseLogging: augmentations are logged through the context logger.
func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	opts := flow.DefaultOptions()
	opts.Ctx = ctxlog.WithLogger(context.Background(), logger)
	opts.Verbose = true
	_, err := flow.EdmondsKarp(weighted(true, arc{"A", "B", 5}), "A", "B", opts)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "augmenting path")
	require.Contains(t, buf.String(), "method=edmonds-karp")

	buf.Reset()
	opts.Verbose = false
	_, err = flow.EdmondsKarp(weighted(true, arc{"A", "B", 5}), "A", "B", opts)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

// TestMinCut_Undirected cuts both edges into the sink side.
func TestMinCut_Undirected(t *testing.T) {
	g := weighted(false, arc{"A", "B", 3}, arc{"B", "C", 2}, arc{"A", "C", 1})

	cut, err := flow.MinCut(g, "A", "C", flow.MethodDinic, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3.0, cut.Value)
	require.Equal(t, []string{"A", "B"}, cut.SourceSide)
	require.Equal(t, []string{"C"}, cut.SinkSide)
	require.Len(t, cut.Edges, 2)
	require.Equal(t, 3.0, cut.Flow.MaxFlow)
}

// TestMinCut_Disconnected: no path means an empty cut of value 0.
func TestMinCut_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_, _ = g.AddEdge("B", "A", core.WithWeight(4))

	cut, err := flow.MinCut(g, "A", "B", "", flow.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, cut.Value)
	require.Empty(t, cut.Edges)
	require.Equal(t, []string{"A"}, cut.SourceSide)
}
