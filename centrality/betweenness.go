package centrality

import "github.com/katalvlaran/graphty/core"

// BetweennessResult holds vertex and edge betweenness.
//
// Edge scores are keyed by edge ID. Pct is each vertex score divided by the
// maximum vertex score (0 when every score is 0).
type BetweennessResult struct {
	Vertex map[string]float64
	Edge   map[string]float64
	Pct    map[string]float64
}

// Betweenness computes vertex and edge betweenness with Brandes' algorithm:
// one shortest-path DAG per source (BFS, or Dijkstra on weighted graphs),
// then dependency accumulation in reverse distance order.
//
// On undirected graphs each pair is counted once. WithNormalized divides by
// the number of pairs that could route through the element: (n−1)(n−2)
// ordered pairs for vertices and n(n−1) for edges, halved on undirected graphs.
//
// Complexity: O(V·E) unweighted, O(V·E + V²·log V) weighted.
//
// Errors: ErrGraphNil, ErrNegativeWeight, ErrBadParameter, core.ErrCancelled.
func Betweenness(g *core.Graph, opts ...Option) (*BetweennessResult, error) {
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
	vb := make([]float64, n)
	eb := make(map[*core.Edge]float64)
	delta := make([]float64, n)
	tree := newSPTree(n)
	steps := core.NewSteps(cfg.Ctx, "betweenness", cfg.StepHook)

	for s := 0; s < n; s++ {
		if err = steps.Next(); err != nil {
			return nil, err
		}
		tree.run(ix, s)
		for i := range delta {
			delta[i] = 0
		}
		for i := len(tree.order) - 1; i >= 0; i-- {
			w := tree.order[i]
			for _, p := range tree.preds[w] {
				c := tree.sigma[p.from] / tree.sigma[w] * (1 + delta[w])
				eb[p.edge] += c
				delta[p.from] += c
			}
			if w != s {
				vb[w] += delta[w]
			}
		}
	}

	vScale, eScale := 1.0, 1.0
	if !ix.Directed {
		vScale, eScale = 0.5, 0.5
	}
	if cfg.Normalized {
		// Undirected halving and the halved pair count cancel, so both
		// orientations share one denominator.
		nf := float64(n)
		if n > 2 {
			vScale = 1 / ((nf - 1) * (nf - 2))
		}
		if n > 1 {
			eScale = 1 / (nf * (nf - 1))
		}
	}

	res := &BetweennessResult{
		Vertex: make(map[string]float64, n),
		Edge:   make(map[string]float64, g.EdgeCount()),
		Pct:    make(map[string]float64, n),
	}
	var peak float64
	for i, id := range ix.IDs {
		s := vb[i] * vScale
		res.Vertex[id] = s
		peak = max(peak, s)
	}
	for _, id := range ix.IDs {
		if peak > 0 {
			res.Pct[id] = res.Vertex[id] / peak
		} else {
			res.Pct[id] = 0
		}
	}
	for _, e := range g.Edges() {
		res.Edge[e.ID] = eb[e] * eScale
	}

	return res, nil
}
