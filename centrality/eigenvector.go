package centrality

import "github.com/katalvlaran/graphty/core"

// Eigenvector computes eigenvector centrality by power iteration on the
// shifted matrix (Aᵀ + I), which has the same leading eigenvector as Aᵀ but
// does not oscillate on bipartite graphs. A vertex's score is fed by its
// in-neighbours on directed graphs. Scores have unit L2 norm.
//
// Errors: ErrGraphNil, ErrNegativeWeight, ErrBadParameter, ErrNotConverged,
// core.ErrCancelled.
func Eigenvector(g *core.Graph, opts ...Option) (*IterativeResult, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	ix, err := spectralGraph(g)
	if err != nil {
		return nil, err
	}

	n := ix.N()
	x := uniform(n, 1/float64(max(n, 1)))
	normalizeL2(x)
	iters, ok, err := iterate(&cfg, "eigenvector", x, func(next, cur []float64) error {
		for v := range next {
			s := cur[v]
			for _, a := range ix.In[v] {
				s += a.Weight * cur[a.To]
			}
			next[v] = s
		}
		normalizeL2(next)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return finish(&cfg, ix, x, iters, ok)
}
