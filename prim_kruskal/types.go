// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = fmt.Errorf("prim_kruskal: MST requires an undirected graph: %w", core.ErrStructural)

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
// Prim cannot run without a valid root string.
var ErrEmptyRoot = fmt.Errorf("prim_kruskal: empty root vertex: %w", core.ErrStructural)

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| == 0 or the
// graph has more than one component.
var ErrDisconnected = fmt.Errorf("prim_kruskal: graph is disconnected: %w", core.ErrStructural)

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = fmt.Errorf("prim_kruskal: unknown method: %w", core.ErrNotFound)

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method   string        : one of MethodPrim or MethodKruskal.
//	Root     string        : start vertex ID for Prim; ignored when Method == MethodKruskal.
//	Ctx      context.Context: cancellation, checked once per accepted tree edge.
//	StepHook core.StepHook : optional host hook at the same boundaries.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	Ctx      context.Context
	StepHook core.StepHook
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(opts *MSTOptions) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// WithStepHook installs a host hook called once per accepted tree edge.
func WithStepHook(h core.StepHook) Option {
	return func(opts *MSTOptions) { opts.StepHook = h }
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal; Compute falls back to the smallest vertex ID for Prim).
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Ctx:    context.Background(),
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph, Root); an empty Root means the smallest vertex ID.
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns the MST edges, their total effective weight (core.Graph.Weight) and an error.
func Compute(graph *core.Graph, opts ...Option) ([]*core.Edge, float64, error) {
	o := resolve(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		root := o.Root
		if root == "" && graph != nil {
			if ids := graph.Vertices(); len(ids) > 0 {
				root = ids[0]
			}
		}

		return Prim(graph, root, opts...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
