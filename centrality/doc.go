// Package centrality scores vertex (and edge) importance.
//
// Measures:
//
//   - Degree: raw in/out/total degree and the max-normalized percentage.
//   - Betweenness: Brandes accumulation over one shortest-path DAG per source,
//     for vertices and edges; BFS on unweighted graphs, Dijkstra otherwise.
//   - Closeness: inverse mean distance with the Wasserman–Faust correction,
//     so disconnected graphs still get comparable scores.
//   - Eigenvector: shifted power iteration on (Aᵀ + I), L2-normalized.
//   - PageRank: damped random surfer with uniform dangling redistribution.
//   - HITS: alternating hub/authority updates, L1-normalized.
//   - Katz: x = α·Aᵀx + β, L2-normalized.
//
// Iterative measures stop when the L1 change between rounds drops below
// n·Tolerance. Hitting MaxIterations is an error (ErrNotConverged) unless
// WithAllowNonConvergence is given, in which case IterativeResult.Converged
// reports false.
//
// Every measure reads g through a dense core.Indexed snapshot, so vertex
// order (and therefore floating-point summation order) is sorted by ID and
// repeatable. Negative weights are rejected with ErrNegativeWeight.
//
// Errors wrap core error kinds: ErrGraphNil (core.ErrStructural);
// ErrNegativeWeight, ErrBadParameter, ErrNotConverged, ErrDiverged
// (core.ErrNumeric); cancellation at step boundaries (core.ErrCancelled).
package centrality
