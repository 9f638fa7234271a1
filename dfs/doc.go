// Package dfs implements depth‑first search traversal and topological sort
// on a core.Graph, supporting both directed and undirected graphs where
// appropriate.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Discovery/finish timestamps on one monotonic clock
//   - Cancellation via context.Context and core.StepHook
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component (WithFullTraversal)
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// Why:
//   - Build and analyze dependency graphs (build systems, package managers, task schedulers)
//   - Determine safe execution orders in DAGs
//   - Provide a foundation for SCC detection, connectivity, and pathfinding
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post‑order, Depth, Parent, Discovery, Finish, Visited maps
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrUndirected           TopologicalSort on an undirected graph
//   - ErrCycleDetected        cycle discovered in DAG operations (wraps core.ErrCycle)
//   - core.ErrCancelled       DFS canceled via context or step hook
//   - hook errors             propagated from OnVisit or OnExit
package dfs
