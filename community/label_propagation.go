package community

import "github.com/katalvlaran/graphty/core"

// LabelPropagation starts with every vertex in its own label and, round by
// round, sets each vertex to the label with the largest total edge weight
// among its neighbours. A vertex keeps its label when it is among the best;
// otherwise the lowest best label wins. Updates apply immediately
// (asynchronous). Rounds stop at a fixed point or MaxIterations, and
// Result.Converged reports which.
//
// Errors: ErrGraphNil, ErrBadParameter, ErrNegativeWeight, core.ErrCancelled.
func LabelPropagation(g *core.Graph, opts ...Option) (*Result, error) {
	cfg, ix, wg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	n := wg.n()
	steps := core.NewSteps(cfg.Ctx, "label-propagation", cfg.StepHook)
	order := visitOrder(n, newRNG(cfg))
	labels := identity(n)
	t := newTally(n)

	converged := false
	rounds := 0
	for rounds < cfg.MaxIterations {
		if err = steps.Next(); err != nil {
			return nil, err
		}
		rounds++
		changed := false
		for _, u := range order {
			if len(wg.adj[u]) == 0 {
				continue
			}
			for _, e := range wg.adj[u] {
				t.add(labels[e.to], e.w)
			}
			top := -1.0
			for _, l := range t.touched {
				top = max(top, t.w[l])
			}
			cur := labels[u]
			if !(t.seen[cur] && t.w[cur] >= top-gainEps) {
				pick := -1
				for _, l := range t.touched {
					if t.w[l] >= top-gainEps && (pick < 0 || l < pick) {
						pick = l
					}
				}
				labels[u] = pick
				changed = true
			}
			t.reset()
		}
		if !changed {
			converged = true
			break
		}
	}

	res := finalize(ix, wg, labels, cfg.Resolution)
	res.Iterations = rounds
	res.Converged = converged

	return res, nil
}
