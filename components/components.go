// Package components partitions a graph into connected components.
//
//   - ConnectedComponents: breadth-first flood fill. Directed graphs are
//     treated as undirected, which yields weakly connected components.
//   - StronglyConnected: Tarjan's single-pass algorithm with low-link values.
//     On undirected graphs it coincides with ConnectedComponents.
//
// Both return components whose members are sorted by ID, ordered by their
// smallest member, so identical graphs always give identical numbering.
//
// Complexity: O(V + E) time, O(V) space.
package components

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphty/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = fmt.Errorf("components: graph is nil: %w", core.ErrStructural)

// Options configures a components run.
type Options struct {
	Ctx      context.Context
	StepHook core.StepHook
}

// Option is a functional option.
type Option func(*Options)

// WithContext sets the cancellation context, checked once per root vertex.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepHook installs a host hook called once per root vertex.
func WithStepHook(h core.StepHook) Option {
	return func(o *Options) { o.StepHook = h }
}

// Result lists the components and each vertex's component index.
type Result struct {
	Components [][]string
	Membership map[string]int
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.Components) }

// ConnectedComponents finds (weakly) connected components.
func ConnectedComponents(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	ix := g.Snapshot()
	steps := core.NewSteps(cfg.Ctx, "components", cfg.StepHook)

	comp := make([]int, ix.N())
	for i := range comp {
		comp[i] = -1
	}
	var groups [][]int
	for root := range comp {
		if comp[root] >= 0 {
			continue
		}
		if err := steps.Next(); err != nil {
			return nil, err
		}
		id := len(groups)
		comp[root] = id
		members := []int{root}
		for q := 0; q < len(members); q++ {
			v := members[q]
			for _, arcs := range [][]core.Arc{ix.Out[v], ix.In[v]} {
				for _, a := range arcs {
					if comp[a.To] < 0 {
						comp[a.To] = id
						members = append(members, a.To)
					}
				}
			}
		}
		groups = append(groups, members)
	}

	return build(ix, groups), nil
}

// StronglyConnected finds strongly connected components with Tarjan's algorithm.
func StronglyConnected(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	ix := g.Snapshot()
	t := &tarjan{
		ix:      ix,
		index:   make([]int, ix.N()),
		low:     make([]int, ix.N()),
		onStack: make([]bool, ix.N()),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	steps := core.NewSteps(cfg.Ctx, "scc", cfg.StepHook)
	for v := range t.index {
		if t.index[v] >= 0 {
			continue
		}
		if err := steps.Next(); err != nil {
			return nil, err
		}
		t.strongConnect(v)
	}
	// Tarjan emits components in reverse topological order; renumber by
	// smallest member for stable output.
	slices.SortFunc(t.groups, func(a, b []int) int { return slices.Min(a) - slices.Min(b) })

	return build(ix, t.groups), nil
}

type tarjan struct {
	ix      *core.Indexed
	counter int
	index   []int
	low     []int
	onStack []bool
	stack   []int
	groups  [][]int
}

func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, a := range t.ix.Out[v] {
		w := a.To
		switch {
		case t.index[w] < 0:
			t.strongConnect(w)
			t.low[v] = min(t.low[v], t.low[w])
		case t.onStack[w]:
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	if t.low[v] != t.index[v] {
		return
	}
	var members []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		members = append(members, w)
		if w == v {
			break
		}
	}
	t.groups = append(t.groups, members)
}

func build(ix *core.Indexed, groups [][]int) *Result {
	res := &Result{
		Components: make([][]string, len(groups)),
		Membership: make(map[string]int, ix.N()),
	}
	for c, members := range groups {
		slices.Sort(members)
		ids := make([]string, len(members))
		for i, m := range members {
			ids[i] = ix.IDs[m]
			res.Membership[ix.IDs[m]] = c
		}
		res.Components[c] = ids
	}

	return res
}
