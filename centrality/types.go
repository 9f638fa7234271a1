package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// Sentinel errors for centrality measures.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("centrality: graph is nil: %w", core.ErrStructural)

	// ErrNegativeWeight is returned by measures that need non-negative weights.
	ErrNegativeWeight = fmt.Errorf("centrality: negative edge weight: %w", core.ErrNumeric)

	// ErrBadParameter is returned for out-of-range numeric options.
	ErrBadParameter = fmt.Errorf("centrality: bad parameter: %w", core.ErrNumeric)

	// ErrNotConverged is returned when an iterative measure exhausts its
	// iteration cap, unless AllowNonConvergence is set.
	ErrNotConverged = fmt.Errorf("centrality: did not converge: %w", core.ErrNumeric)

	// ErrDiverged is returned when Katz scores overflow, which happens when
	// alpha is not below 1/λmax.
	ErrDiverged = fmt.Errorf("centrality: iteration diverged: %w", core.ErrNumeric)
)

// Defaults for the iterative measures.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 1000
	DefaultDamping       = 0.85
	DefaultKatzAlpha     = 0.1
	DefaultKatzBeta      = 1.0
)

// Options configures every measure in the package; each reads the fields it needs.
type Options struct {
	Ctx      context.Context
	StepHook core.StepHook

	// Tolerance bounds the per-vertex mean L1 change between rounds.
	Tolerance float64

	// MaxIterations caps power-iteration rounds.
	MaxIterations int

	// AllowNonConvergence returns the last iterate with Converged=false
	// instead of ErrNotConverged.
	AllowNonConvergence bool

	// Damping is the PageRank follow probability.
	Damping float64

	// Alpha (attenuation) and Beta (baseline) configure Katz.
	Alpha float64
	Beta  float64

	// Normalized rescales betweenness by the number of vertex pairs.
	Normalized bool

	err error
}

// Option configures a centrality run.
type Option func(*Options)

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Damping:       DefaultDamping,
		Alpha:         DefaultKatzAlpha,
		Beta:          DefaultKatzBeta,
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
// (one Brandes source, one iteration round).
func WithStepHook(h core.StepHook) Option {
	return func(o *Options) { o.StepHook = h }
}

// WithTolerance sets the convergence tolerance (> 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.fail("tolerance %g must be positive", tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap (> 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.fail("max iterations %d must be positive", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithAllowNonConvergence accepts a capped, unconverged result.
func WithAllowNonConvergence() Option {
	return func(o *Options) { o.AllowNonConvergence = true }
}

// WithDamping sets the PageRank damping factor in [0, 1].
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d < 0 || d > 1 {
			o.fail("damping %g outside [0,1]", d)
			return
		}
		o.Damping = d
	}
}

// WithAlpha sets the Katz attenuation factor (> 0).
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if a <= 0 {
			o.fail("alpha %g must be positive", a)
			return
		}
		o.Alpha = a
	}
}

// WithBeta sets the Katz baseline score.
func WithBeta(b float64) Option {
	return func(o *Options) { o.Beta = b }
}

// WithNormalized rescales betweenness scores by the number of vertex pairs.
func WithNormalized() Option {
	return func(o *Options) { o.Normalized = true }
}

// IterativeResult is the outcome of a power-iteration measure.
type IterativeResult struct {
	Scores     map[string]float64
	Converged  bool
	Iterations int
}

// HITSResult holds hub and authority scores, each summing to 1.
type HITSResult struct {
	Hubs        map[string]float64
	Authorities map[string]float64
	Converged   bool
	Iterations  int
}
