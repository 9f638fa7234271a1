package community

import "github.com/katalvlaran/graphty/core"

// Modularity scores partition (vertex ID → any community label) on g with
// resolution γ. Directed graphs are scored on their undirected view; an
// edgeless graph scores 0.
//
// Errors: ErrGraphNil, ErrBadParameter, ErrNegativeWeight, ErrIncompletePartition.
func Modularity(g *core.Graph, partition map[string]int, resolution float64) (float64, error) {
	if resolution <= 0 {
		return 0, ErrBadParameter
	}
	if g == nil {
		return 0, ErrGraphNil
	}
	ix := g.Snapshot()
	wg, err := undirectedView(ix)
	if err != nil {
		return 0, err
	}
	comm := make([]int, ix.N())
	for i, id := range ix.IDs {
		c, ok := partition[id]
		if !ok {
			return 0, ErrIncompletePartition
		}
		comm[i] = c
	}

	return wg.modularity(comm, resolution), nil
}

// Louvain maximizes modularity greedily. Each level moves single vertices
// to the neighbouring community with the best gain until a sweep changes
// nothing, then collapses communities into super-vertices. It stops when a
// level moves nothing, gains less than Threshold, or MaxLevels is reached.
//
// Vertices are visited in sorted order, or a seeded shuffle with WithSeed.
// Directed graphs are treated as undirected with reciprocal weights summed.
//
// Errors: ErrGraphNil, ErrBadParameter, ErrNegativeWeight, core.ErrCancelled.
func Louvain(g *core.Graph, opts ...Option) (*Result, error) {
	cfg, ix, wg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	steps := core.NewSteps(cfg.Ctx, "louvain", cfg.StepHook)
	rng := newRNG(cfg)
	gamma := cfg.Resolution

	member := identity(wg.n())
	q := wg.modularity(member, gamma)
	level := wg
	levels := 0
	for levels < cfg.MaxLevels {
		comm := identity(level.n())
		moved, err := level.moveNodes(comm, visitOrder(level.n(), rng), gamma, cfg.MaxIterations, steps)
		if err != nil {
			return nil, err
		}
		if !moved {
			break
		}
		comm, count := renumber(comm)
		member = compose(member, comm)
		levels++
		nq := wg.modularity(member, gamma)
		if nq-q < cfg.Threshold {
			break
		}
		q = nq
		level = level.aggregate(comm, count)
	}

	res := finalize(ix, wg, member, gamma)
	res.Levels = levels

	return res, nil
}

// moveNodes runs local-move sweeps over order until one changes nothing.
// comm labels must be below g.n(). It reports whether any vertex moved.
func (g *wgraph) moveNodes(comm, order []int, gamma float64, maxSweeps int, steps *core.Steps) (bool, error) {
	if g.m2 == 0 {
		return false, nil
	}
	n := g.n()
	tot := make([]float64, n)
	for u, c := range comm {
		tot[c] += g.k[u]
	}
	t := newTally(n)
	moved := false
	for sweep := 0; sweep < maxSweeps; sweep++ {
		if err := steps.Next(); err != nil {
			return moved, err
		}
		improved := false
		for _, u := range order {
			cu := comm[u]
			for _, e := range g.adj[u] {
				t.add(comm[e.to], e.w)
			}
			tot[cu] -= g.k[u]
			best := cu
			bestGain := t.w[cu] - gamma*tot[cu]*g.k[u]/g.m2
			for _, c := range t.touched {
				if gain := t.w[c] - gamma*tot[c]*g.k[u]/g.m2; gain > bestGain+gainEps {
					best, bestGain = c, gain
				}
			}
			tot[best] += g.k[u]
			comm[u] = best
			if best != cu {
				improved, moved = true, true
			}
			t.reset()
		}
		if !improved {
			break
		}
	}

	return moved, nil
}

// tally accumulates edge weight per community without reallocating.
type tally struct {
	w       []float64
	seen    []bool
	touched []int
}

func newTally(n int) *tally {
	return &tally{w: make([]float64, n), seen: make([]bool, n)}
}

func (t *tally) add(c int, w float64) {
	if !t.seen[c] {
		t.seen[c] = true
		t.touched = append(t.touched, c)
	}
	t.w[c] += w
}

func (t *tally) reset() {
	for _, c := range t.touched {
		t.w[c] = 0
		t.seen[c] = false
	}
	t.touched = t.touched[:0]
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// compose maps each original vertex through one more level of labels.
func compose(member, comm []int) []int {
	out := make([]int, len(member))
	for i, m := range member {
		out[i] = comm[m]
	}

	return out
}
