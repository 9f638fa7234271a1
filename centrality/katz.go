package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphty/core"
)

// Katz computes Katz centrality, x = α·Aᵀx + β, by fixed-point iteration
// from the zero vector. The series converges only when α < 1/λmax; a run
// whose iterate overflows fails with ErrDiverged. Scores are L2-normalized
// at the end.
//
// Errors: ErrGraphNil, ErrNegativeWeight, ErrBadParameter, ErrNotConverged,
// ErrDiverged, core.ErrCancelled.
func Katz(g *core.Graph, opts ...Option) (*IterativeResult, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	ix, err := spectralGraph(g)
	if err != nil {
		return nil, err
	}

	alpha, beta := cfg.Alpha, cfg.Beta
	x := make([]float64, ix.N())
	iters, ok, err := iterate(&cfg, "katz", x, func(next, cur []float64) error {
		for v := range next {
			s := 0.0
			for _, a := range ix.In[v] {
				s += a.Weight * cur[a.To]
			}
			next[v] = alpha*s + beta
			if math.IsInf(next[v], 0) || math.IsNaN(next[v]) {
				return fmt.Errorf("%w: alpha %g too large", ErrDiverged, alpha)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	normalizeL2(x)

	return finish(&cfg, ix, x, iters, ok)
}
