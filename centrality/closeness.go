package centrality

import (
	"math"

	"github.com/katalvlaran/graphty/core"
)

// Closeness computes closeness centrality with the Wasserman–Faust
// correction for disconnected graphs:
//
//	C(u) = (r / Σd) · (r / (n−1))
//
// where r is the number of vertices u reaches (excluding u) and Σd the sum of
// their distances. A vertex that reaches nothing scores 0. On directed graphs
// distances follow outgoing edges. Weighted graphs use weighted distances.
//
// Complexity: O(V·E) unweighted, O(V·(E + V log V)) weighted.
//
// Errors: ErrGraphNil, ErrNegativeWeight, core.ErrCancelled.
func Closeness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	ix := g.Snapshot()
	if err = checkWeights(ix); err != nil {
		return nil, err
	}

	n := ix.N()
	out := make(map[string]float64, n)
	tree := newSPTree(n)
	steps := core.NewSteps(cfg.Ctx, "closeness", cfg.StepHook)
	for u := 0; u < n; u++ {
		if err = steps.Next(); err != nil {
			return nil, err
		}
		tree.run(ix, u)
		var (
			sum float64
			r   int
		)
		for v, d := range tree.dist {
			if v == u || math.IsInf(d, 1) {
				continue
			}
			sum += d
			r++
		}
		if r == 0 || sum == 0 {
			out[ix.IDs[u]] = 0
			continue
		}
		rf := float64(r)
		out[ix.IDs[u]] = (rf / sum) * (rf / float64(n-1))
	}

	return out, nil
}
