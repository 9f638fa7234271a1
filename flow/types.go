package flow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/internal/ctxlog"
)

// Method names accepted by MaxFlow and MinCut.
const (
	MethodEdmondsKarp   = "edmonds-karp"
	MethodFordFulkerson = "ford-fulkerson"
	MethodDinic         = "dinic"
)

// DefaultEpsilon is the capacity below which an arc counts as saturated.
const DefaultEpsilon = 1e-9

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = fmt.Errorf("flow: graph is nil: %w", core.ErrStructural)

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = fmt.Errorf("flow: source vertex %w", core.ErrNotFound)

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = fmt.Errorf("flow: sink vertex %w", core.ErrNotFound)

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = fmt.Errorf("flow: source equals sink: %w", core.ErrStructural)

	// ErrUnknownMethod is returned by MaxFlow and MinCut for an unrecognised method.
	ErrUnknownMethod = fmt.Errorf("flow: unknown method: %w", core.ErrNotFound)
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// Unwrap reports EdgeError as a numeric error.
func (e EdgeError) Unwrap() error { return core.ErrNumeric }

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation, checked once per augmenting path.
//   - StepHook: called once per augmenting path with the method as phase.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Verbose: log each augmentation at debug level through the context logger.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	StepHook             core.StepHook
	Epsilon              float64
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns a FlowOptions with safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
	}
}

// normalize fills zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// trace logs one augmentation when Verbose is set.
func (o *FlowOptions) trace(method string, path []string, pushed, total float64) {
	if !o.Verbose {
		return
	}
	ctxlog.FromContext(o.Ctx).Debug("augmenting path",
		slog.String("method", method),
		slog.Any("path", path),
		slog.Float64("pushed", pushed),
		slog.Float64("total", total),
	)
}

// Result is the outcome of one max-flow run.
//
// EdgeFlow is keyed by edge ID. On directed graphs the value is the flow
// along From→To and lies in [0, capacity]. On undirected graphs it is signed:
// positive means From→To, negative means To→From.
//
// Residual holds the remaining capacity of every arc with capacity > Epsilon,
// as a directed weighted graph over the same vertices.
type Result struct {
	Method        string
	Source, Sink  string
	MaxFlow       float64
	EdgeFlow      map[string]float64
	Augmentations int
	Residual      *core.Graph
}

// Cut is a minimum s-t cut.
// SourceSide holds the vertices reachable from the source in the final
// residual network; Edges are the original edges leaving it.
type Cut struct {
	Value      float64
	SourceSide []string
	SinkSide   []string
	Edges      []*core.Edge
	Flow       *Result
}
