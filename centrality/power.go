package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphty/core"
)

// stepFunc writes the next iterate into next from cur.
type stepFunc func(next, cur []float64) error

// iterate applies step until the L1 change between rounds falls below
// len(x)·Tolerance or MaxIterations rounds have run. x holds the final iterate.
func iterate(cfg *Options, phase string, x []float64, step stepFunc) (iters int, converged bool, err error) {
	if len(x) == 0 {
		return 0, true, nil
	}
	steps := core.NewSteps(cfg.Ctx, phase, cfg.StepHook)
	next := make([]float64, len(x))
	limit := float64(len(x)) * cfg.Tolerance
	for iters < cfg.MaxIterations {
		if err = steps.Next(); err != nil {
			return iters, false, err
		}
		iters++
		if err = step(next, x); err != nil {
			return iters, false, err
		}
		var diff float64
		for i := range x {
			diff += math.Abs(next[i] - x[i])
		}
		copy(x, next)
		if diff < limit {
			return iters, true, nil
		}
	}

	return iters, false, nil
}

// finish maps x back to vertex IDs, or fails when the cap was hit and
// non-convergence is not allowed.
func finish(cfg *Options, ix *core.Indexed, x []float64, iters int, converged bool) (*IterativeResult, error) {
	if !converged && !cfg.AllowNonConvergence {
		return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, iters)
	}
	res := &IterativeResult{
		Scores:     make(map[string]float64, len(x)),
		Converged:  converged,
		Iterations: iters,
	}
	for i, v := range x {
		res.Scores[ix.IDs[i]] = v
	}

	return res, nil
}

func uniform(n int, v float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}

	return x
}

// normalizeL1 scales x to sum 1; an all-zero x becomes uniform.
func normalizeL1(x []float64) {
	var s float64
	for _, v := range x {
		s += math.Abs(v)
	}
	if s == 0 {
		for i := range x {
			x[i] = 1 / float64(len(x))
		}
		return
	}
	for i := range x {
		x[i] /= s
	}
}

// normalizeL2 scales x to unit Euclidean length; an all-zero x is left alone.
func normalizeL2(x []float64) {
	var s float64
	for _, v := range x {
		s += v * v
	}
	if s == 0 {
		return
	}
	s = math.Sqrt(s)
	for i := range x {
		x[i] /= s
	}
}

// spectralGraph snapshots g and rejects negative weights.
func spectralGraph(g *core.Graph) (*core.Indexed, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix := g.Snapshot()
	if err := checkWeights(ix); err != nil {
		return nil, err
	}

	return ix, nil
}
