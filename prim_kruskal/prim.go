// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph
// by growing outwards from a specified root vertex using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, or graph.Directed() == true.
//   - ErrEmptyRoot          : if the provided root string is empty.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//   - core.ErrCancelled     : the context was cancelled or the step hook refused.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root as visited and push its incident edges (sorted by neighbour).
//  3. While the heap is not empty and MST has < |V|-1 edges:
//     a. Pop the lightest candidate; equal weights pop in push order.
//     b. If its far endpoint is already visited, skip (this edge would form a cycle).
//     c. Otherwise accept it, mark the endpoint visited and push its incident edges.
//  4. If MST size < |V|-1 after loop → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, opts ...Option) ([]*core.Edge, float64, error) {
	// 1. Validate that graph is non-nil and undirected.
	if graph == nil || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	o := resolve(opts)
	steps := core.NewSteps(o.Ctx, MethodPrim, o.StepHook)

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %q", core.ErrVertexNotFound, root)
	}
	if len(vertices) == 1 {
		return []*core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]*core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	seq := 0
	// push enqueues every edge from v to a not-yet-visited neighbour.
	push := func(v string) error {
		neighbors, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			to := e.Other(v)
			if visited[to] {
				continue
			}
			seq++
			heap.Push(pq, &candidate{edge: e, to: to, weight: graph.Weight(e), seq: seq})
		}

		return nil
	}

	// 2. Seed with the root.
	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(*candidate)
		if visited[c.to] {
			continue
		}
		if err := steps.Next(); err != nil {
			return nil, 0, err
		}
		visited[c.to] = true
		mst = append(mst, c.edge)
		totalWeight += c.weight
		if err := push(c.to); err != nil {
			return nil, 0, err
		}
	}

	// 4. Unreached vertices mean the graph is disconnected.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// candidate is a heap entry: an edge leading to the unvisited vertex `to`.
type candidate struct {
	edge   *core.Edge
	to     string
	weight float64
	seq    int
}

// edgePQ implements heap.Interface as a min‐heap of candidates ordered by
// weight, then by push sequence.
type edgePQ []*candidate

// Len returns the number of candidates in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight; ties fall back to insertion order for determinism.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate; called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(*candidate)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
