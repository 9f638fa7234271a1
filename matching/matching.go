package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphty/core"
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = fmt.Errorf("matching: graph is nil: %w", core.ErrStructural)

	// ErrNoPartition is returned when no left vertex set is supplied.
	ErrNoPartition = fmt.Errorf("matching: no bipartition supplied: %w", core.ErrStructural)

	// ErrSameSide is returned when an edge joins two vertices of the same side.
	ErrSameSide = fmt.Errorf("matching: edge within one side: %w", core.ErrStructural)

	// ErrNotBipartite is returned by Bipartition for graphs with an odd cycle.
	ErrNotBipartite = fmt.Errorf("matching: graph is not bipartite: %w", core.ErrStructural)
)

// Options configures a matching run.
type Options struct {
	Ctx      context.Context
	StepHook core.StepHook
}

// Option mutates Options.
type Option func(*Options)

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithStepHook installs a hook called once per left vertex.
func WithStepHook(h core.StepHook) Option {
	return func(o *Options) { o.StepHook = h }
}

// Result is a maximum matching.
//
// Mate maps every matched vertex (either side) to its partner.
// Edges lists the matched edges sorted by edge ID.
type Result struct {
	Mate  map[string]string
	Edges []*core.Edge
	Left  []string
	Right []string
}

// Size returns the number of matched pairs.
func (r *Result) Size() int { return len(r.Edges) }

// BipartiteMatching returns a maximum matching between left and the rest of
// the vertices of g. Duplicate IDs in left are ignored.
func BipartiteMatching(g *core.Graph, left []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(left) == 0 {
		return nil, ErrNoPartition
	}
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	isLeft := make(map[string]bool, len(left))
	for _, id := range left {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("matching: left vertex %q: %w", id, core.ErrVertexNotFound)
		}
		isLeft[id] = true
	}

	// adj[u] lists, for a left u, the edges to right vertices sorted by neighbour.
	adj := make(map[string][]*core.Edge, len(isLeft))
	for _, e := range g.Edges() {
		if isLeft[e.From] == isLeft[e.To] {
			return nil, fmt.Errorf("%w: %s (%s–%s)", ErrSameSide, e.ID, e.From, e.To)
		}
		u := e.From
		if !isLeft[u] {
			u = e.To
		}
		adj[u] = append(adj[u], e)
	}
	for u, es := range adj {
		sort.SliceStable(es, func(i, j int) bool { return es[i].Other(u) < es[j].Other(u) })
	}

	res := &Result{Mate: make(map[string]string)}
	for _, id := range g.Vertices() {
		if isLeft[id] {
			res.Left = append(res.Left, id)
		} else {
			res.Right = append(res.Right, id)
		}
	}

	// via[r] is the edge currently matching right vertex r.
	via := make(map[string]*core.Edge)
	var try func(u string, seen map[string]bool) bool
	try = func(u string, seen map[string]bool) bool {
		for _, e := range adj[u] {
			r := e.Other(u)
			if seen[r] {
				continue
			}
			seen[r] = true
			if prev, taken := via[r]; !taken || try(prev.Other(r), seen) {
				via[r] = e
				res.Mate[u] = r
				res.Mate[r] = u

				return true
			}
		}

		return false
	}

	steps := core.NewSteps(o.Ctx, "matching", o.StepHook)
	for _, u := range res.Left {
		if err := steps.Next(); err != nil {
			return nil, err
		}
		try(u, make(map[string]bool))
	}

	for _, e := range via {
		res.Edges = append(res.Edges, e)
	}
	sort.Slice(res.Edges, func(i, j int) bool { return edgeLess(res.Edges[i].ID, res.Edges[j].ID) })

	return res, nil
}

// Bipartition two-colours g by BFS from each uncoloured vertex in sorted
// order; the first vertex of every component lands on the left.
func Bipartition(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	side := make(map[string]int, g.VertexCount())
	var left []string
	for _, start := range g.Vertices() {
		if _, ok := side[start]; ok {
			continue
		}
		side[start] = 0
		queue := []string{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			if side[u] == 0 {
				left = append(left, u)
			}
			for _, e := range incident(g, u) {
				v := e.Other(u)
				s, ok := side[v]
				if !ok {
					side[v] = 1 - side[u]
					queue = append(queue, v)
					continue
				}
				if s == side[u] {
					return nil, fmt.Errorf("%w: %s–%s", ErrNotBipartite, u, v)
				}
			}
		}
	}
	sort.Strings(left)

	return left, nil
}

// incident returns every edge touching u regardless of direction.
func incident(g *core.Graph, u string) []*core.Edge {
	out, _ := g.Neighbors(u)
	if !g.Directed() {
		return out
	}
	in, _ := g.InEdges(u)

	return append(out, in...)
}

// edgeLess orders "e2" before "e10".
func edgeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
