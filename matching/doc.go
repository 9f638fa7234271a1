// Package matching computes maximum-cardinality matchings on bipartite
// graphs given by a *core.Graph and an explicit left vertex set.
//
// BipartiteMatching runs Kuhn's augmenting-path algorithm: every left vertex
// (in sorted order) starts one DFS that either finds a free right vertex or
// re-routes an existing partner. Edge direction is ignored; each edge must
// join a left vertex to a right one.
//
// Bipartition two-colours a graph with BFS and returns a left set usable as
// input, or ErrNotBipartite.
//
// Complexity: O(V · E). Memory: O(V + E).
//
// Errors:
//   - ErrGraphNil        : graph is nil (core.ErrStructural).
//   - ErrNoPartition     : left set is empty (core.ErrStructural).
//   - ErrSameSide        : an edge joins two vertices of one side (core.ErrStructural).
//   - ErrNotBipartite    : Bipartition found an odd cycle (core.ErrStructural).
//   - core.ErrVertexNotFound: a left vertex is absent from the graph.
//   - core.ErrCancelled  : context cancelled or step hook refused.
package matching
