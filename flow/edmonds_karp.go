package flow

import (
	"github.com/katalvlaran/graphty/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a Result holding the flow value, per-edge flows and the residual
// graph, or an error on missing vertices, negative capacities or cancellation.
//
// Options:
//   - Epsilon: capacities ≤ Epsilon treated as zero (default 1e-9)
//   - Verbose: log each augmentation through the context logger
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	opts.normalize()
	net, err := buildNetwork(g, source, sink, opts.Epsilon)
	if err != nil {
		return nil, err
	}
	steps := core.NewSteps(opts.Ctx, MethodEdmondsKarp, opts.StepHook)

	var (
		total float64
		count int
	)
	for {
		if err = steps.Next(); err != nil {
			return nil, err
		}
		path := net.bfsPath(source, sink)
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
		opts.trace(MethodEdmondsKarp, path, bottle, total)
	}

	return net.result(g, MethodEdmondsKarp, source, sink, total, count), nil
}

// bfsPath finds the shortest path (fewest arcs) with positive residual
// capacity, or nil when sink is unreachable.
func (n *network) bfsPath(source, sink string) []string {
	parent := map[string]string{source: source}
	queue := []string{source}
	for len(queue) > 0 && parent[sink] == "" {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.nbrs[u] {
			if _, seen := parent[v]; seen || n.capMap[u][v] <= n.eps {
				continue
			}
			parent[v] = u
			if v == sink {
				break
			}
			queue = append(queue, v)
		}
	}
	if _, ok := parent[sink]; !ok {
		return nil
	}

	var path []string
	for v := sink; v != source; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, source)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
