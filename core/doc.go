// Package core provides the canonical in-memory Graph used by every graphty
// algorithm, together with the namespaced result store algorithms write into.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); unweighted edges weigh 1
//   - Self-loops (WithLoops)
//   - One logical edge per endpoint pair; undirected edges are visible from both endpoints
//   - Constant-time edge lookups via nested maps: out[from][to] = edgeID
//   - Monotonic textual Edge.ID generation ("e1", "e2", …)
//
// Why use core.Graph?
//
//   - Single type, composable flags.
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() return sorted results.
//   - Lazy sequences: Nodes(), EdgesSeq(), NeighborsSeq() snapshot membership at call time
//     and may be ranged over any number of times.
//   - Clone support: CloneEmpty (vertices+flags), Clone (deep copy incl. results).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error   // O(1), idempotent
//	HasVertex(id string) bool                          // O(1)
//	RemoveVertex(id string) bool                       // O(deg(v)), cascades incident edges
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(from, to string) bool                   // O(1)
//	HasEdge(from, to string) bool                      // O(1)
//
//	// Counts & degrees
//	Degree(id) / InDegree(id) / OutDegree(id)          // O(1)
//	VertexCount() / EdgeCount()                        // O(1)
//
// Results:
//
// Every vertex, edge and the graph itself carry a namespaced attribute store.
// Algorithms write fields under a namespace such as "graphty.degree" and
// consumers read them back through dotted paths:
//
//	v, ok := g.VertexResult("A", "graphty.degree.degreePct")
//
// Results are overwritten by a re-run of the same algorithm and never expire on
// their own; callers re-run algorithms after mutating the graph.
//
// Errors:
//
// The package defines the error kinds shared by every algorithm package:
// ErrStructural, ErrNotFound, ErrNumeric, ErrCycle and ErrCancelled.
// Package-level sentinels wrap one of these kinds, so callers can branch on
// either the precise sentinel or the broad kind with errors.Is.
package core
