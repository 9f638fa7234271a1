// Package prim_kruskal computes minimum spanning trees of undirected
// *core.Graph values with Kruskal's and Prim's algorithms.
//
// A spanning tree connects every vertex with |V|−1 edges; the minimum one has
// the smallest total weight. Unweighted graphs are spanned with unit weights,
// so any spanning tree of |V|−1 edges is minimal.
//
// Algorithms
//
//   - Kruskal(g, opts...): stable sort of g.Edges() by weight, then a
//     union–find pass that skips edges closing a cycle.
//     Time O(E log E), memory O(V + E).
//   - Prim(g, root, opts...): grows one tree from root with a min-heap of
//     candidate edges. Time O(E log V), memory O(V + E).
//   - Compute(g, opts...): dispatches on WithMethod (MethodKruskal by
//     default); WithRoot picks Prim's root, else the first sorted vertex.
//
// Both return the tree edges in acceptance order and their total weight.
// On the same graph both totals are equal; the edge sets may differ only
// between equal-weight alternatives.
//
// Determinism
//
//	Edges are listed by ID and sorted stably, Prim pushes neighbours in
//	sorted order and pops equal weights in push order. Self-loops never enter
//	the tree.
//
// Errors
//
//   - ErrInvalidGraph: nil or directed graph.
//   - ErrEmptyRoot, core.ErrVertexNotFound: bad Prim root.
//   - ErrDisconnected: empty graph, or no tree spans every vertex.
//   - ErrUnknownMethod: Compute with a method other than prim or kruskal.
//   - core.ErrCancelled: WithContext was cancelled or WithStepHook refused;
//     there is one step per accepted tree edge.
package prim_kruskal
