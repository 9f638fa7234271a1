package flow

import (
	"sort"

	"github.com/katalvlaran/graphty/core"
)

// network is the residual capacity map shared by all three methods.
//
// capMap[u][v] is the remaining capacity u→v; orig keeps the aggregated
// input capacities. On undirected graphs every edge contributes to both
// directions. nbrs lists, in sorted order, every v with an arc u→v or v→u,
// since either can carry residual capacity.
type network struct {
	ids    []string
	nbrs   map[string][]string
	capMap map[string]map[string]float64
	orig   map[string]map[string]float64
	eps    float64
}

// buildNetwork validates the endpoints and aggregates edge capacities.
// Self-loops are ignored; capacities ≤ eps never enter the network.
func buildNetwork(g *core.Graph, source, sink string, eps float64) (*network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameEndpoints
	}

	ix := g.Snapshot()
	n := &network{
		ids:    ix.IDs,
		nbrs:   make(map[string][]string, len(ix.IDs)),
		capMap: make(map[string]map[string]float64, len(ix.IDs)),
		orig:   make(map[string]map[string]float64, len(ix.IDs)),
		eps:    eps,
	}
	for _, id := range ix.IDs {
		n.capMap[id] = make(map[string]float64)
		n.orig[id] = make(map[string]float64)
	}

	for u, arcs := range ix.Out {
		uid := ix.IDs[u]
		for _, a := range arcs {
			if a.To == u {
				continue
			}
			if a.Weight < -eps {
				return nil, EdgeError{From: a.Edge.From, To: a.Edge.To, Cap: a.Weight}
			}
			if a.Weight <= eps {
				continue
			}
			n.orig[uid][ix.IDs[a.To]] += a.Weight
		}
	}

	linked := make(map[string]map[string]bool, len(ix.IDs))
	link := func(a, b string) {
		if linked[a] == nil {
			linked[a] = make(map[string]bool)
		}
		if !linked[a][b] {
			linked[a][b] = true
			n.nbrs[a] = append(n.nbrs[a], b)
		}
	}
	for u, m := range n.orig {
		for v, c := range m {
			n.capMap[u][v] = c
			link(u, v)
			link(v, u)
		}
	}
	for _, list := range n.nbrs {
		sort.Strings(list)
	}

	return n, nil
}

// augment pushes amount along path and updates reverse residuals.
func (n *network) augment(path []string, amount float64) {
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		n.capMap[u][v] -= amount
		if n.capMap[u][v] < 0 {
			n.capMap[u][v] = 0
		}
		n.capMap[v][u] += amount
	}
}

// bottleneck returns the smallest residual capacity along path.
func (n *network) bottleneck(path []string) float64 {
	b := n.capMap[path[0]][path[1]]
	for i := 1; i < len(path)-1; i++ {
		if c := n.capMap[path[i]][path[i+1]]; c < b {
			b = c
		}
	}

	return b
}

// reachable returns the set of vertices reachable from s over arcs with
// residual capacity > eps.
func (n *network) reachable(s string) map[string]bool {
	seen := map[string]bool{s: true}
	queue := []string{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.nbrs[u] {
			if !seen[v] && n.capMap[u][v] > n.eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// result translates the residual map back onto g's edges.
func (n *network) result(g *core.Graph, method, source, sink string, total float64, augmentations int) *Result {
	res := &Result{
		Method:        method,
		Source:        source,
		Sink:          sink,
		MaxFlow:       total,
		EdgeFlow:      make(map[string]float64, g.EdgeCount()),
		Augmentations: augmentations,
		Residual:      n.residualGraph(),
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			res.EdgeFlow[e.ID] = 0
			continue
		}
		net := n.orig[e.From][e.To] - n.capMap[e.From][e.To]
		if abs(net) <= n.eps {
			net = 0
		}
		if g.Directed() && net < 0 {
			net = 0
		}
		res.EdgeFlow[e.ID] = net
	}

	return res
}

// residualGraph materialises capMap as a directed weighted core.Graph.
func (n *network) residualGraph() *core.Graph {
	r := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, id := range n.ids {
		_ = r.AddVertex(id)
	}
	for _, u := range n.ids {
		for _, v := range n.nbrs[u] {
			if c := n.capMap[u][v]; c > n.eps {
				_, _ = r.AddEdge(u, v, core.WithWeight(c))
			}
		}
	}

	return r
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
