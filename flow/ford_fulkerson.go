package flow

import (
	"github.com/katalvlaran/graphty/core"
)

// FordFulkerson computes the maximum flow from source→sink by repeatedly
// augmenting along any path found with depth-first search. Neighbours are
// explored in sorted ID order, so the sequence of paths is deterministic.
//
// Termination is guaranteed for integral (and rational) capacities; with
// arbitrary reals prefer EdmondsKarp or Dinic.
//
// Complexity: O(E · F), where F is the max-flow value on integral networks.
// Memory:     O(V + E)
func FordFulkerson(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	opts.normalize()
	net, err := buildNetwork(g, source, sink, opts.Epsilon)
	if err != nil {
		return nil, err
	}
	steps := core.NewSteps(opts.Ctx, MethodFordFulkerson, opts.StepHook)

	var (
		total float64
		count int
	)
	for {
		if err = steps.Next(); err != nil {
			return nil, err
		}
		path := net.dfsPath(source, sink)
		if path == nil {
			break
		}
		bottle := net.bottleneck(path)
		if bottle <= opts.Epsilon {
			break
		}
		net.augment(path, bottle)
		total += bottle
		count++
		opts.trace(MethodFordFulkerson, path, bottle, total)
	}

	return net.result(g, MethodFordFulkerson, source, sink, total, count), nil
}

// dfsPath returns the first source→sink path found by an iterative DFS over
// arcs with positive residual capacity, or nil.
func (n *network) dfsPath(source, sink string) []string {
	type frame struct {
		v string
		i int
	}
	visited := map[string]bool{source: true}
	stack := []frame{{v: source}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.v == sink {
			path := make([]string, len(stack))
			for i, f := range stack {
				path[i] = f.v
			}

			return path
		}
		if top.i >= len(n.nbrs[top.v]) {
			stack = stack[:len(stack)-1]
			continue
		}
		u := top.v
		w := n.nbrs[u][top.i]
		top.i++
		if visited[w] || n.capMap[u][w] <= n.eps {
			continue
		}
		visited[w] = true
		stack = append(stack, frame{v: w})
	}

	return nil
}
