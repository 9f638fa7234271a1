package flow

import (
	"math"

	"github.com/katalvlaran/graphty/core"
)

// Dinic computes the maximum flow from source→sink with Dinic's algorithm:
// a BFS level graph followed by blocking flows found by DFS, repeated until
// the sink drops out of the level graph.
//
// LevelRebuildInterval > 0 forces a level rebuild after that many
// augmentations within one phase. Each augmentation is one step.
//
// Complexity: O(V² · E) in general, O(E · √V) on unit-capacity networks.
// Memory:     O(V + E)
func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	opts.normalize()
	net, err := buildNetwork(g, source, sink, opts.Epsilon)
	if err != nil {
		return nil, err
	}
	steps := core.NewSteps(opts.Ctx, MethodDinic, opts.StepHook)

	var (
		total float64
		count int
	)
	for {
		level := net.levels(source)
		if _, ok := level[sink]; !ok {
			break
		}
		iter := make(map[string]int, len(net.ids))
		sincePhase := 0
		for {
			if err = steps.Next(); err != nil {
				return nil, err
			}
			pushed, path := net.blockingPush(source, sink, math.Inf(1), level, iter, make([]string, 0, level[sink]+1))
			if pushed <= opts.Epsilon {
				break
			}
			total += pushed
			count++
			sincePhase++
			opts.trace(MethodDinic, path, pushed, total)
			if opts.LevelRebuildInterval > 0 && sincePhase >= opts.LevelRebuildInterval {
				break
			}
		}
	}

	return net.result(g, MethodDinic, source, sink, total, count), nil
}

// levels assigns BFS distances from source over arcs with residual capacity.
// Unreachable vertices are absent from the map.
func (n *network) levels(source string) map[string]int {
	level := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.nbrs[u] {
			if _, seen := level[v]; seen || n.capMap[u][v] <= n.eps {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level
}

// blockingPush sends one path of flow through the level graph, advancing
// iter past dead arcs, and returns the amount pushed with the path taken.
func (n *network) blockingPush(
	u, sink string,
	avail float64,
	level, iter map[string]int,
	path []string,
) (float64, []string) {
	path = append(path, u)
	if u == sink {
		return avail, path
	}
	for ; iter[u] < len(n.nbrs[u]); iter[u]++ {
		v := n.nbrs[u][iter[u]]
		c := n.capMap[u][v]
		lv, ok := level[v]
		if c <= n.eps || !ok || lv != level[u]+1 {
			continue
		}
		pushed, full := n.blockingPush(v, sink, math.Min(avail, c), level, iter, path)
		if pushed > n.eps {
			n.capMap[u][v] -= pushed
			if n.capMap[u][v] < 0 {
				n.capMap[u][v] = 0
			}
			n.capMap[v][u] += pushed

			return pushed, full
		}
	}

	return 0, path
}
