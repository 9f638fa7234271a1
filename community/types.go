package community

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("community: graph is nil: %w", core.ErrStructural)

	// ErrNegativeWeight is returned when an edge weight is negative.
	ErrNegativeWeight = fmt.Errorf("community: negative edge weight: %w", core.ErrNumeric)

	// ErrBadParameter is returned for out-of-range options.
	ErrBadParameter = fmt.Errorf("community: bad parameter: %w", core.ErrNumeric)

	// ErrIncompletePartition is returned by Modularity when a vertex has no community.
	ErrIncompletePartition = fmt.Errorf("community: partition does not cover every vertex: %w", core.ErrStructural)
)

// Defaults.
const (
	DefaultResolution    = 1.0
	DefaultThreshold     = 1e-7
	DefaultMaxLevels     = 32
	DefaultMaxIterations = 100
)

// gainEps keeps float noise from flipping a vertex between equally good moves.
const gainEps = 1e-12

// Options configures every detector in the package.
type Options struct {
	Ctx      context.Context
	StepHook core.StepHook

	// Resolution γ scales the null-model term of modularity.
	Resolution float64

	// Threshold is the minimum modularity gain for another Louvain level.
	Threshold float64

	// Seed, when Shuffle is set, permutes the vertex visiting order.
	Seed    int64
	Shuffle bool

	// MaxLevels caps aggregation levels (Louvain, Leiden).
	MaxLevels int

	// MaxIterations caps label-propagation rounds and local-move sweeps.
	MaxIterations int

	// TargetCount stops Girvan–Newman once that many communities exist;
	// 0 keeps the split with peak modularity.
	TargetCount int

	err error
}

// Option configures a detector.
type Option func(*Options)

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Resolution:    DefaultResolution,
		Threshold:     DefaultThreshold,
		MaxLevels:     DefaultMaxLevels,
		MaxIterations: DefaultMaxIterations,
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrBadParameter}, args...)...)
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

// WithStepHook installs a host hook called at every step boundary
// (one local-move sweep, one edge removal, one propagation round).
func WithStepHook(h core.StepHook) Option {
	return func(o *Options) { o.StepHook = h }
}

// WithResolution sets γ (> 0). Larger values favour smaller communities.
func WithResolution(gamma float64) Option {
	return func(o *Options) {
		if gamma <= 0 {
			o.fail("resolution %g must be positive", gamma)
			return
		}
		o.Resolution = gamma
	}
}

// WithThreshold sets the minimum per-level modularity gain (>= 0).
func WithThreshold(th float64) Option {
	return func(o *Options) {
		if th < 0 {
			o.fail("threshold %g must not be negative", th)
			return
		}
		o.Threshold = th
	}
}

// WithSeed visits vertices in a seeded random order instead of sorted order.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Shuffle = true
	}
}

// WithMaxLevels caps aggregation levels (> 0).
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail("max levels %d must be positive", n)
			return
		}
		o.MaxLevels = n
	}
}

// WithMaxIterations caps propagation rounds and local-move sweeps (> 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail("max iterations %d must be positive", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTargetCount makes Girvan–Newman stop at k communities (> 0).
func WithTargetCount(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.fail("target count %d must be positive", k)
			return
		}
		o.TargetCount = k
	}
}

// Result is a partition of every vertex into communities 0..k−1, numbered
// in order of each community's smallest vertex ID.
type Result struct {
	Membership  map[string]int
	Communities [][]string
	Modularity  float64

	// Levels counts aggregation levels (Louvain, Leiden).
	Levels int

	// Iterations counts propagation rounds or edge removals.
	Iterations int

	// Converged is false when label propagation hit its round cap.
	Converged bool
}

// Count returns the number of communities.
func (r *Result) Count() int { return len(r.Communities) }
