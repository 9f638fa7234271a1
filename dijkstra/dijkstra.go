// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries with equal distance pop in insertion order.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other reachable vertices of g. Unweighted graphs use weight 1 per edge.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
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
	if err := CheckNonNegative(g); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		options: cfg,
		steps:   core.NewSteps(cfg.Ctx, "dijkstra", cfg.StepHook),
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]float64),
			Prev:   make(map[string]string),
		},
		best:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// CheckNonNegative returns ErrNegativeWeight naming the first negative edge
// in creation order, or nil.
func CheckNonNegative(g *core.Graph) error {
	for _, e := range g.Edges() {
		if w := g.Weight(e); w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	steps   *core.Steps
	res     *Result
	best    map[string]float64 // tentative distances, including unsettled vertices
	prev    map[string]string  // tentative predecessors
	visited map[string]bool    // settled vertices
	pq      nodePQ
	seq     uint64
}

// init pushes Source=0 into the heap.
func (r *runner) init() {
	src := r.options.Source
	r.best[src] = 0
	heap.Init(&r.pq)
	r.push(src, 0)
}

func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process is the core loop: pop the closest unsettled vertex, settle it,
// relax its outgoing edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		if err := r.steps.Next(); err != nil {
			return err
		}

		r.visited[u] = true
		r.res.Dist[u] = d
		r.res.Order = append(r.res.Order, u)
		if p, ok := r.prev[u]; ok {
			r.res.Prev[u] = p
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves neighbours strictly.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	du := r.best[u]
	for _, e := range neighbors {
		v := e.Other(u)
		w := r.g.Weight(e)
		if w >= r.options.InfEdgeThreshold || r.visited[v] {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.best[v]; seen && nd >= old {
			continue
		}
		r.best[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64 // insertion order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
