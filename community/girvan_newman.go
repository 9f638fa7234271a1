package community

import (
	"math"

	"github.com/katalvlaran/graphty/centrality"
	"github.com/katalvlaran/graphty/components"
	"github.com/katalvlaran/graphty/core"
)

// GirvanNewman splits the graph divisively: repeatedly remove the edge with
// the highest betweenness (lowest edge ID on ties) and re-read the
// connected components. With WithTargetCount it stops as soon as that many
// components exist; otherwise it removes every edge and returns the split
// with peak modularity (earliest on ties).
//
// Betweenness is computed on the unweighted undirected topology; modularity
// uses the original weights.
//
// Complexity: O(E²·V), suitable for small graphs only.
//
// Errors: ErrGraphNil, ErrBadParameter, ErrNegativeWeight, core.ErrCancelled.
func GirvanNewman(g *core.Graph, opts ...Option) (*Result, error) {
	cfg, ix, wg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	gamma := cfg.Resolution
	steps := core.NewSteps(cfg.Ctx, "girvan-newman", cfg.StepHook)

	work := core.NewGraph()
	for _, id := range ix.IDs {
		_ = work.AddVertex(id)
	}
	for u, row := range wg.adj {
		for _, e := range row {
			if u < e.to {
				if _, err = work.AddEdge(ix.IDs[u], ix.IDs[e.to]); err != nil {
					return nil, err
				}
			}
		}
	}

	var (
		best     []int
		bestQ    = math.Inf(-1)
		removals int
	)
	for {
		cc, err := components.ConnectedComponents(work)
		if err != nil {
			return nil, err
		}
		labels := make([]int, ix.N())
		for i, id := range ix.IDs {
			labels[i] = cc.Membership[id]
		}
		if cfg.TargetCount > 0 {
			if cc.Count() >= cfg.TargetCount || work.EdgeCount() == 0 {
				best = labels
				break
			}
		} else if q := wg.modularity(labels, gamma); q > bestQ+gainEps {
			best, bestQ = labels, q
		}
		if work.EdgeCount() == 0 {
			break
		}

		if err = steps.Next(); err != nil {
			return nil, err
		}
		bc, err := centrality.Betweenness(work, centrality.WithContext(cfg.Ctx))
		if err != nil {
			return nil, err
		}
		var cut *core.Edge
		top := -1.0
		for _, e := range work.Edges() {
			if s := bc.Edge[e.ID]; s > top+1e-9 {
				top, cut = s, e
			}
		}
		if err = work.RemoveEdgeByID(cut.ID); err != nil {
			return nil, err
		}
		removals++
	}

	res := finalize(ix, wg, best, gamma)
	res.Iterations = removals

	return res, nil
}
