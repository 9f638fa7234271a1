// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphty/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
// Unweighted graphs are accepted; every edge then weighs core.DefaultWeight.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, or graph.Directed() == true.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//   - core.ErrCancelled: the context was cancelled or the step hook refused.
//
// Steps:
//  1. Validate: graph != nil and !graph.Directed().
//  2. Retrieve sorted vertex IDs; if len(vertices)==0 → ErrDisconnected.
//     If len(vertices)==1 → trivial MST (empty, weight=0).
//  3. Collect all edges via graph.Edges(), skip self-loops (e.From == e.To).
//  4. Sort edges by ascending effective weight (stable, so equal weights keep edge ID order).
//  5. Initialize DSU maps parent[] and rank[] for each vertex in vertices.
//  6. Loop over sorted edges: for each edge (u,v), if find(u) != find(v), then union(u,v) and include edge in MST.
//  7. Once MST has |V|-1 edges, break. After loop, if MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]*core.Edge, float64, error) {
	// 1. Validate that graph is non-nil and undirected.
	if graph == nil || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	o := resolve(opts)
	steps := core.NewSteps(o.Ctx, MethodKruskal, o.StepHook)

	// 2. Retrieve all vertex IDs in sorted order for determinism.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []*core.Edge{}, 0, nil
	}

	// 3. Collect all edges, skipping self-loops: they cannot be part of a spanning tree.
	allEdges := graph.Edges() // sorted by numeric edge ID
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}

	// 4. Stable sort by weight keeps insertion order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return graph.Weight(edges[i]) < graph.Weight(edges[j])
	})

	// 5. Disjoint-set forest.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path halving.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v string) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 6. Build MST by iterating over sorted edges.
	var (
		mst         = make([]*core.Edge, 0, len(vertices)-1)
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		if err := steps.Next(); err != nil {
			return nil, 0, err
		}
		mst = append(mst, e)
		totalWeight += graph.Weight(e)
		if len(mst) == numVerts-1 {
			break
		}
	}

	// 7. Fewer than |V|-1 edges means some vertex was never reached.
	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
