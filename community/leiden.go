package community

import "github.com/katalvlaran/graphty/core"

// Leiden improves on Louvain by guaranteeing connected communities. Each
// level runs three phases:
//
//  1. Local moving, exactly as in Louvain, starting from the partition
//     inherited from the previous level.
//  2. Refinement: inside every community, vertices start as singletons and
//     a singleton may only merge into an adjacent sub-community of the same
//     community with non-negative gain, so each sub-community stays connected.
//  3. Aggregation by the refined partition, with each super-vertex starting
//     in the unrefined community of its members.
//
// The loop ends when refinement merges nothing. A final pass splits any
// community that is not connected in g into its connected pieces.
//
// Errors: ErrGraphNil, ErrBadParameter, ErrNegativeWeight, core.ErrCancelled.
func Leiden(g *core.Graph, opts ...Option) (*Result, error) {
	cfg, ix, wg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	steps := core.NewSteps(cfg.Ctx, "leiden", cfg.StepHook)
	rng := newRNG(cfg)
	gamma := cfg.Resolution

	member := identity(wg.n())
	level := wg
	part := identity(wg.n())
	levels := 0
	for {
		order := visitOrder(level.n(), rng)
		if _, err = level.moveNodes(part, order, gamma, cfg.MaxIterations, steps); err != nil {
			return nil, err
		}
		refined, rc := renumber(level.refine(part, order, gamma))
		if rc == level.n() || levels >= cfg.MaxLevels {
			member = compose(member, part)
			break
		}
		inherited := make([]int, rc)
		for u, r := range refined {
			inherited[r] = part[u]
		}
		part, _ = renumber(inherited)
		member = compose(member, refined)
		level = level.aggregate(refined, rc)
		levels++
	}

	res := finalize(ix, wg, wg.splitDisconnected(member), gamma)
	res.Levels = levels

	return res, nil
}

// refine builds the connectivity-preserving sub-partition of part.
func (g *wgraph) refine(part, order []int, gamma float64) []int {
	n := g.n()
	ref := identity(n)
	if g.m2 == 0 {
		return ref
	}
	tot := append([]float64(nil), g.k...)
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}
	t := newTally(n)
	for _, u := range order {
		cu := ref[u]
		if size[cu] > 1 {
			continue
		}
		for _, e := range g.adj[u] {
			if part[e.to] == part[u] {
				t.add(ref[e.to], e.w)
			}
		}
		tot[cu] -= g.k[u]
		best, bestGain := cu, 0.0
		for _, c := range t.touched {
			if c == cu {
				continue
			}
			if gain := t.w[c] - gamma*tot[c]*g.k[u]/g.m2; gain > bestGain+gainEps {
				best, bestGain = c, gain
			}
		}
		tot[best] += g.k[u]
		if best != cu {
			size[cu]--
			size[best]++
			ref[u] = best
		}
		t.reset()
	}

	return ref
}
