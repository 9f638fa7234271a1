// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm, which tolerates negative edge weights and detects negative cycles.
//
// Algorithm:
//
//   - Up to V−1 relaxation rounds over every arc, in sorted vertex order and
//     sorted neighbour order; a round that changes nothing ends the loop early.
//   - One verification round: any arc that can still be relaxed proves a
//     negative cycle reachable from the source, reported as *NegativeCycleError.
//   - On undirected graphs every edge is usable both ways, so a single
//     negative undirected edge is itself a negative cycle.
//
// Complexity: Time O(V·E), Space O(V).
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphty/core"
)

// BellmanFord computes shortest distances from Options.Source.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrVertexNotFound, *NegativeCycleError
// (errors.Is(err, core.ErrCycle)), core.ErrCancelled.
func BellmanFord(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	ix := g.Snapshot()
	n := ix.N()
	steps := core.NewSteps(cfg.Ctx, "bellman-ford", cfg.StepHook)

	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	src := ix.Index[cfg.Source]
	dist[src] = 0

	rounds := 0
	for round := 1; round < n; round++ {
		if err := steps.Next(); err != nil {
			return nil, err
		}
		rounds = round
		if !relaxAll(ix, dist, prev) {
			break
		}
	}

	// Verification round.
	for u := 0; u < n; u++ {
		if math.IsInf(dist[u], 1) {
			continue
		}
		for _, a := range ix.Out[u] {
			if dist[u]+a.Weight < dist[a.To] {
				prev[a.To] = u

				return nil, &NegativeCycleError{Cycle: extractCycle(ix, prev, a.To)}
			}
		}
	}

	res := &Result{
		Source: cfg.Source,
		Dist:   make(map[string]float64),
		Prev:   make(map[string]string),
		Rounds: rounds,
	}
	for i, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		res.Dist[ix.IDs[i]] = d
		if prev[i] >= 0 {
			res.Prev[ix.IDs[i]] = ix.IDs[prev[i]]
		}
	}

	return res, nil
}

// relaxAll performs one round over every arc and reports whether any
// distance improved.
func relaxAll(ix *core.Indexed, dist []float64, prev []int) bool {
	changed := false
	for u := range ix.Out {
		if math.IsInf(dist[u], 1) {
			continue
		}
		for _, a := range ix.Out[u] {
			if cand := dist[u] + a.Weight; cand < dist[a.To] {
				dist[a.To] = cand
				prev[a.To] = u
				changed = true
			}
		}
	}

	return changed
}

// extractCycle walks predecessors V times from v, which lands inside the
// cycle, then collects the cycle in forward order starting at its smallest
// vertex ID, closed.
func extractCycle(ix *core.Indexed, prev []int, v int) []string {
	x := v
	for i := 0; i < ix.N() && prev[x] >= 0; i++ {
		x = prev[x]
	}
	rev := []int{x}
	for cur := prev[x]; cur >= 0 && cur != x && len(rev) <= ix.N(); cur = prev[cur] {
		rev = append(rev, cur)
	}
	k := len(rev)
	fwd := make([]int, k)
	start := 0
	for i, id := range rev {
		fwd[k-1-i] = id
	}
	// IDs are indexed in sorted order, so the smallest index is the smallest ID.
	for i := range fwd {
		if fwd[i] < fwd[start] {
			start = i
		}
	}
	cycle := make([]string, 0, k+1)
	for i := 0; i < k; i++ {
		cycle = append(cycle, ix.IDs[fwd[(start+i)%k]])
	}

	return append(cycle, cycle[0])
}
