package flow

import (
	"fmt"

	"github.com/katalvlaran/graphty/core"
)

// MaxFlow dispatches to the named method. An empty method selects
// MethodEdmondsKarp.
func MaxFlow(g *core.Graph, source, sink, method string, opts FlowOptions) (*Result, error) {
	switch method {
	case "", MethodEdmondsKarp:
		return EdmondsKarp(g, source, sink, opts)
	case MethodFordFulkerson:
		return FordFulkerson(g, source, sink, opts)
	case MethodDinic:
		return Dinic(g, source, sink, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// MinCut computes a minimum source/sink cut by running MaxFlow and taking
// every vertex still reachable from source in the residual network as the
// source side. Cut.Value equals the max-flow value.
//
// On directed graphs only edges leaving the source side are cut edges; on
// undirected graphs every edge with endpoints on different sides is.
func MinCut(g *core.Graph, source, sink, method string, opts FlowOptions) (*Cut, error) {
	opts.normalize()
	res, err := MaxFlow(g, source, sink, method, opts)
	if err != nil {
		return nil, err
	}

	side := make(map[string]bool)
	queue := []string{source}
	side[source] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, _ := res.Residual.NeighborIDs(u)
		for _, v := range nbrs {
			if !side[v] {
				side[v] = true
				queue = append(queue, v)
			}
		}
	}

	cut := &Cut{Flow: res}
	for _, id := range g.Vertices() {
		if side[id] {
			cut.SourceSide = append(cut.SourceSide, id)
		} else {
			cut.SinkSide = append(cut.SinkSide, id)
		}
	}
	for _, e := range g.Edges() {
		crosses := side[e.From] && !side[e.To]
		if !g.Directed() {
			crosses = side[e.From] != side[e.To]
		}
		if !crosses {
			continue
		}
		cut.Edges = append(cut.Edges, e)
		if w := g.Weight(e); w > opts.Epsilon {
			cut.Value += w
		}
	}

	return cut, nil
}
