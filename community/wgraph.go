package community

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/graphty/core"
)

type nbr struct {
	to int
	w  float64
}

// wgraph is a symmetric weighted view used by every detector. Directed arcs
// u→v and v→u merge into one undirected weight; self-loops are kept apart.
type wgraph struct {
	adj  [][]nbr   // sorted by neighbour, no self entries
	loop []float64 // self-loop weight
	k    []float64 // weighted degree, loops counted twice
	m2   float64   // Σk = 2m
}

func (w *wgraph) n() int { return len(w.adj) }

// undirectedView converts a snapshot; negative weights are rejected.
func undirectedView(ix *core.Indexed) (*wgraph, error) {
	n := ix.N()
	acc := make([]map[int]float64, n)
	loop := make([]float64, n)
	add := func(u, v int, w float64) {
		if acc[u] == nil {
			acc[u] = make(map[int]float64)
		}
		acc[u][v] += w
	}
	for u, arcs := range ix.Out {
		for _, a := range arcs {
			if a.Weight < 0 {
				return nil, ErrNegativeWeight
			}
			if a.To == u {
				loop[u] += a.Weight
				continue
			}
			add(u, a.To, a.Weight)
			if ix.Directed {
				add(a.To, u, a.Weight)
			}
		}
	}

	return newWGraph(acc, loop), nil
}

func newWGraph(acc []map[int]float64, loop []float64) *wgraph {
	n := len(loop)
	g := &wgraph{adj: make([][]nbr, n), loop: loop, k: make([]float64, n)}
	for u := 0; u < n; u++ {
		for v, w := range acc[u] {
			g.adj[u] = append(g.adj[u], nbr{to: v, w: w})
			g.k[u] += w
		}
		slices.SortFunc(g.adj[u], func(a, b nbr) int { return a.to - b.to })
		g.k[u] += 2 * loop[u]
		g.m2 += g.k[u]
	}

	return g
}

// aggregate collapses each community of comm (numbered 0..count−1) into one vertex.
func (g *wgraph) aggregate(comm []int, count int) *wgraph {
	acc := make([]map[int]float64, count)
	loop := make([]float64, count)
	for u, row := range g.adj {
		cu := comm[u]
		loop[cu] += g.loop[u]
		for _, e := range row {
			cv := comm[e.to]
			if cu == cv {
				// Each internal edge is seen from both ends.
				loop[cu] += e.w / 2
				continue
			}
			if acc[cu] == nil {
				acc[cu] = make(map[int]float64)
			}
			acc[cu][cv] += e.w
		}
	}

	return newWGraph(acc, loop)
}

// modularity computes Q = Σ_c [ in_c/2m − γ·(tot_c/2m)² ].
func (g *wgraph) modularity(comm []int, gamma float64) float64 {
	if g.m2 == 0 {
		return 0
	}
	in := make(map[int]float64)
	tot := make(map[int]float64)
	for u, row := range g.adj {
		c := comm[u]
		tot[c] += g.k[u]
		in[c] += 2 * g.loop[u]
		for _, e := range row {
			if comm[e.to] == c {
				in[c] += e.w
			}
		}
	}
	var q float64
	for c, t := range tot {
		f := t / g.m2
		q += in[c]/g.m2 - gamma*f*f
	}

	return q
}

// visitOrder returns 0..n−1, shuffled when the options ask for it.
func visitOrder(n int, rng *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	return order
}

func newRNG(cfg *Options) *rand.Rand {
	if !cfg.Shuffle {
		return nil
	}

	return rand.New(rand.NewSource(cfg.Seed))
}

// renumber maps labels to 0..k−1 in order of first appearance over sorted
// vertex indices.
func renumber(labels []int) ([]int, int) {
	next := 0
	seen := make(map[int]int)
	out := make([]int, len(labels))
	for i, l := range labels {
		id, ok := seen[l]
		if !ok {
			id = next
			seen[l] = id
			next++
		}
		out[i] = id
	}

	return out, next
}

// splitDisconnected breaks every community into its connected pieces.
func (g *wgraph) splitDisconnected(comm []int) []int {
	out := make([]int, len(comm))
	for i := range out {
		out[i] = -1
	}
	next := 0
	for root := range comm {
		if out[root] >= 0 {
			continue
		}
		out[root] = next
		queue := []int{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, e := range g.adj[u] {
				if out[e.to] < 0 && comm[e.to] == comm[root] {
					out[e.to] = next
					queue = append(queue, e.to)
				}
			}
		}
		next++
	}

	return out
}

func prepare(g *core.Graph, opts []Option) (*Options, *core.Indexed, *wgraph, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if g == nil {
		return nil, nil, nil, ErrGraphNil
	}
	ix := g.Snapshot()
	wg, err := undirectedView(ix)
	if err != nil {
		return nil, nil, nil, err
	}

	return &cfg, ix, wg, nil
}

// finalize renumbers comm and fills a Result.
func finalize(ix *core.Indexed, wg *wgraph, comm []int, gamma float64) *Result {
	labels, k := renumber(comm)
	res := &Result{
		Membership:  make(map[string]int, len(labels)),
		Communities: make([][]string, k),
		Modularity:  wg.modularity(labels, gamma),
		Converged:   true,
	}
	for i, c := range labels {
		id := ix.IDs[i]
		res.Membership[id] = c
		res.Communities[c] = append(res.Communities[c], id)
	}

	return res
}
