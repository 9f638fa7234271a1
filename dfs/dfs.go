// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
// It supports directed and undirected graphs, cancellation, pre‑ and post‑order
// hooks, depth and neighbor limits, full‑graph traversal, and diagnostics.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via WithFullTraversal
//   - Timestamps: Discovery/Finish on one monotonic clock
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context and core.StepHook
//
// Complexity:
//
//   - Time:   O(V + E) for traversal (where V = vertices, E = edges), plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - core.ErrCancelled         if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	steps *core.Steps
	clock int
	res   *DFSResult // result collector
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components (roots in sorted ID order, startID
// ignored); otherwise, it starts only from startID.
// Neighbours are explored in sorted ID order. Returns DFSResult, or an error
// and no result if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:     make([]string, 0, len(vertices)),
		Depth:     make(map[string]int, len(vertices)),
		Parent:    make(map[string]string, len(vertices)),
		Discovery: make(map[string]int, len(vertices)),
		Finish:    make(map[string]int, len(vertices)),
		Visited:   make(map[string]bool, len(vertices)),
	}

	walker := &dfsWalker{
		graph: g,
		opts:  dopts,
		steps: core.NewSteps(dopts.Ctx, "dfs", dopts.StepHook),
		res:   res,
	}

	roots := []string{startID}
	if dopts.FullTraversal {
		roots = vertices
	}
	for _, v := range roots {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v, 0); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	if err := w.steps.Next(); err != nil {
		return err
	}

	w.clock++
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Discovery[id] = w.clock

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, nid := range nbs {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.clock++
	w.res.Finish[id] = w.clock
	w.res.Order = append(w.res.Order, id)

	return nil
}
