// Package bfs implements breadth-first search over a core.Graph.
//
// BFS(g, start, opts...) visits vertices level by level and returns a
// BFSResult with the visit Order, the hop Depth of every reached vertex and
// the Parent links of the search tree. PathTo rebuilds the start→dest path
// from those links; MaxDepth reports the deepest level.
//
// Levels are hop counts: edge weights are ignored. Directed graphs are
// walked along edge direction only. Vertices that are not reachable from the
// start appear in no field of the result.
//
// Determinism
//
//	Neighbours are enqueued in sorted ID order (core.Graph.NeighborIDs) and
//	dequeued FIFO, so two runs on the same graph visit in the same order.
//
// Options
//
//   - WithContext(ctx), WithStepHook(h): one step boundary per dequeue.
//   - WithMaxDepth(d): do not expand vertices at depth d; 0 means no limit.
//   - WithFilterNeighbor(fn): skip neighbour edges where fn returns false.
//   - WithOnEnqueue, WithOnDequeue: observation hooks.
//   - WithOnVisit(fn): a returned error aborts the search and is wrapped.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
//   - ErrNoPath from PathTo when dest was not reached.
//   - core.ErrCancelled when the context ends or the step hook refuses.
//
// Example:
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	if err != nil {
//		return err
//	}
//	path, _ := res.PathTo("C")
package bfs
