// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/graphty/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = fmt.Errorf("dijkstra: source vertex ID is empty: %w", core.ErrStructural)

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = fmt.Errorf("dijkstra: graph is nil: %w", core.ErrStructural)

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = fmt.Errorf("dijkstra: source vertex %w", core.ErrNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight: %w", core.ErrNumeric)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = fmt.Errorf("dijkstra: MaxDistance must be non-negative: %w", core.ErrNumeric)

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = fmt.Errorf("dijkstra: InfEdgeThreshold must be positive: %w", core.ErrNumeric)

	// ErrNoPath is returned by PathTo for a vertex that was not reached.
	ErrNoPath = fmt.Errorf("dijkstra: no path: %w", core.ErrNotFound)
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Ctx              context.Context
	StepHook         core.StepHook
	Source           string  // The ID of the source vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepHook installs a host hook called once per settled vertex.
func WithStepHook(h core.StepHook) Option {
	return func(o *Options) { o.StepHook = h }
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values surface as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Zero or negative values surface as ErrBadInfThreshold when Dijkstra runs.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: %g", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Ctx:              context.Background(),
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the shortest-path tree rooted at Source.
//
// Dist and Prev only contain reached vertices; Prev has no entry for Source.
// Order lists vertices in the order they were settled.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
	Order  []string
}

// Reachable reports whether id was settled.
func (r *Result) Reachable(id string) bool {
	_, ok := r.Dist[id]

	return ok
}

// PathTo reconstructs Source → dest by following predecessor links.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	var rev []string
	for cur := dest; ; {
		rev = append(rev, cur)
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, nil
}
