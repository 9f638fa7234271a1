// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	ctx   context.Context
	state map[string]int // visitation state: White, Gray, Black
	stack []string       // current Gray path, for cycle reporting
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots and neighbours are explored in sorted order, so the result is stable.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected (wrapping core.ErrCycle,
// message names the cycle), core.ErrCancelled.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back edges.
func (t *topoSorter) visit(id string) error {
	if err := core.CheckContext(t.ctx); err != nil {
		return err
	}
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	neighbors, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range neighbors {
		switch t.state[nid] {
		case Gray:
			return fmt.Errorf("%w: %v", ErrCycleDetected, t.cycleFrom(nid))
		case White:
			if err = t.visit(nid); err != nil {
				return err
			}
		}
	}

	t.stack = t.stack[:len(t.stack)-1]
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// cycleFrom returns the Gray path from id to the top of the stack, closed at id.
func (t *topoSorter) cycleFrom(id string) []string {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i] == id {
			cycle := append([]string(nil), t.stack[i:]...)

			return append(cycle, id)
		}
	}

	return []string{id}
}
