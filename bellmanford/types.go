// Package bellmanford defines options, results and errors for the
// Bellman–Ford single-source shortest-path algorithm.
package bellmanford

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphty/core"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = fmt.Errorf("bellmanford: source vertex ID is empty: %w", core.ErrStructural)

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = fmt.Errorf("bellmanford: graph is nil: %w", core.ErrStructural)

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = fmt.Errorf("bellmanford: source vertex %w", core.ErrNotFound)

	// ErrNoPath is returned by PathTo for a vertex that was not reached.
	ErrNoPath = fmt.Errorf("bellmanford: no path: %w", core.ErrNotFound)
)

// NegativeCycleError reports a negative-weight cycle reachable from the source.
// Cycle is closed: its first and last elements are the same vertex.
type NegativeCycleError struct {
	Cycle []string
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("bellmanford: negative cycle %s", strings.Join(e.Cycle, "→"))
}

// Unwrap lets errors.Is(err, core.ErrCycle) match.
func (e *NegativeCycleError) Unwrap() error { return core.ErrCycle }

// Options configures BellmanFord.
type Options struct {
	Ctx      context.Context
	StepHook core.StepHook
	Source   string
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// Source sets the starting vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepHook installs a host hook called once per relaxation round.
func WithStepHook(h core.StepHook) Option {
	return func(o *Options) { o.StepHook = h }
}

// Result holds distances and predecessors of every vertex reachable from Source.
// Rounds is the number of relaxation rounds performed before the
// verification round, at most V−1.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
	Rounds int
}

// Reachable reports whether id is reachable from Source.
func (r *Result) Reachable(id string) bool {
	_, ok := r.Dist[id]

	return ok
}

// PathTo reconstructs Source → dest by following predecessor links.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
