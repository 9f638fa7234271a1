package centrality

import (
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// HITS computes Kleinberg hub and authority scores. Each round sets
// authority(v) to the weighted sum of hub scores pointing at v, then hub(u)
// to the weighted sum of authority scores u points at; both vectors are
// L1-normalized. On an edgeless graph both stay uniform. On undirected graphs
// hubs equal authorities.
//
// Errors: ErrGraphNil, ErrNegativeWeight, ErrBadParameter, ErrNotConverged,
// core.ErrCancelled.
func HITS(g *core.Graph, opts ...Option) (*HITSResult, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	ix, err := spectralGraph(g)
	if err != nil {
		return nil, err
	}

	n := ix.N()
	// x = [hubs | authorities]
	x := uniform(2*n, 1/float64(max(n, 1)))
	iters, ok, err := iterate(&cfg, "hits", x, func(next, cur []float64) error {
		hub, auth := next[:n], next[n:]
		for v := 0; v < n; v++ {
			s := 0.0
			for _, a := range ix.In[v] {
				s += a.Weight * cur[a.To]
			}
			auth[v] = s
		}
		normalizeL1(auth)
		for u := 0; u < n; u++ {
			s := 0.0
			for _, a := range ix.Out[u] {
				s += a.Weight * auth[a.To]
			}
			hub[u] = s
		}
		normalizeL1(hub)

		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok && !cfg.AllowNonConvergence {
		return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, iters)
	}

	res := &HITSResult{
		Hubs:        make(map[string]float64, n),
		Authorities: make(map[string]float64, n),
		Converged:   ok,
		Iterations:  iters,
	}
	for i, id := range ix.IDs {
		res.Hubs[id] = x[i]
		res.Authorities[id] = x[n+i]
	}

	return res, nil
}
