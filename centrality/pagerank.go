package centrality

import "github.com/katalvlaran/graphty/core"

// PageRank computes the stationary distribution of a random surfer who
// follows an out-edge (chosen proportionally to weight) with probability
// Damping and teleports uniformly otherwise. Rank held by dangling vertices
// (no positive out-weight) is spread uniformly. Undirected edges are
// followed both ways. Ranks sum to 1.
//
// Errors: ErrGraphNil, ErrNegativeWeight, ErrBadParameter, ErrNotConverged,
// core.ErrCancelled.
func PageRank(g *core.Graph, opts ...Option) (*IterativeResult, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	ix, err := spectralGraph(g)
	if err != nil {
		return nil, err
	}

	n := ix.N()
	nf := float64(n)
	d := cfg.Damping
	outW := make([]float64, n)
	for u, arcs := range ix.Out {
		for _, a := range arcs {
			outW[u] += a.Weight
		}
	}

	x := uniform(n, 1/nf)
	iters, ok, err := iterate(&cfg, "pagerank", x, func(next, cur []float64) error {
		var dangling float64
		for u, w := range outW {
			if w == 0 {
				dangling += cur[u]
			}
		}
		base := (1-d)/nf + d*dangling/nf
		for v := range next {
			s := 0.0
			for _, a := range ix.In[v] {
				if w := outW[a.To]; w > 0 {
					s += cur[a.To] * a.Weight / w
				}
			}
			next[v] = base + d*s
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return finish(&cfg, ix, x, iters, ok)
}
