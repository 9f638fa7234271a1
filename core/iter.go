// File: iter.go
// Role: Lazy, restartable sequences over vertices, edges and neighbours.
// Determinism:
//   - Membership is snapshotted (sorted) when the sequence is created; each
//     range over the returned iter.Seq walks the same snapshot.
// Concurrency:
//   - Mutating the graph while ranging is undefined: removed elements may
//     still be yielded from the snapshot.

package core

import "iter"

// Nodes returns a sequence over the vertices present at call time.
func (g *Graph) Nodes() iter.Seq[*Vertex] {
	g.mu.RLock()
	ids := g.sortedVerticesLocked()
	snap := make([]*Vertex, len(ids))
	for i, id := range ids {
		snap[i] = g.vertices[id]
	}
	g.mu.RUnlock()

	return func(yield func(*Vertex) bool) {
		for _, v := range snap {
			if !yield(v) {
				return
			}
		}
	}
}

// EdgesSeq returns a sequence over the logical edges present at call time.
func (g *Graph) EdgesSeq() iter.Seq[*Edge] {
	snap := g.Edges()

	return func(yield func(*Edge) bool) {
		for _, e := range snap {
			if !yield(e) {
				return
			}
		}
	}
}

// NeighborsSeq returns a sequence of (neighbour ID, edge) pairs leaving id at
// call time. A missing vertex yields an empty sequence.
func (g *Graph) NeighborsSeq(id string) iter.Seq2[string, *Edge] {
	edges, _ := g.Neighbors(id)

	return func(yield func(string, *Edge) bool) {
		for _, e := range edges {
			if !yield(e.Other(id), e) {
				return
			}
		}
	}
}
