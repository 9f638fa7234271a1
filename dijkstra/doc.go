// Package dijkstra provides Dijkstra's shortest-path algorithm on graphs with
// non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex;
//     equal distances are settled in heap insertion order.
//   - Supports path reconstruction, distance caps, and “impassable” edge thresholds.
//   - Unweighted graphs are accepted and treated as unit-weight.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - Result.Prev: predecessor links, so Result.PathTo rebuilds each path lazily.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Context and core.StepHook: one step boundary per settled vertex.
//
// Error handling (sentinel errors, each wrapping a core error kind):
//
//   - ErrEmptySource, ErrNilGraph (core.ErrStructural)
//   - ErrVertexNotFound (core.ErrNotFound)
//   - ErrNegativeWeight (core.ErrNumeric): any edge in the graph has a negative
//     weight, detected by a fast O(E) pre-scan before any distance is computed.
//   - ErrBadMaxDistance, ErrBadInfThreshold (core.ErrNumeric): invalid options.
//   - core.ErrCancelled: the context was cancelled or the step hook refused.
//
// API reference:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	path, _ := res.PathTo("C")
//	fmt.Println(res.Dist["C"], path)
//
// Thread safety:
//
//   - Dijkstra reads g through its locked accessors but does not snapshot it;
//     mutating the graph during a run gives undefined distances.
package dijkstra
