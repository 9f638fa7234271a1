package core

// Arc is one outgoing adjacency entry of an Indexed graph.
type Arc struct {
	To     int     // dense index of the far endpoint
	Weight float64 // effective weight (1 on unweighted graphs)
	Edge   *Edge   // the logical edge
}

// Indexed is a read-only dense snapshot of a Graph: vertices are numbered
// 0..n-1 in sorted ID order and adjacency is stored as slices, which is what
// the numeric algorithms (centrality, community detection, flow) iterate over.
//
// Out[i] lists arcs leaving i; In[i] lists arcs entering i, with Arc.To holding
// the source endpoint. On undirected graphs both hold every incident edge and
// a self-loop appears once.
type Indexed struct {
	IDs      []string
	Index    map[string]int
	Out      [][]Arc
	In       [][]Arc
	Directed bool
	Weighted bool
}

// Snapshot builds the dense view of g.
// Complexity: O(V log V + E log d).
func (g *Graph) Snapshot() *Indexed {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedVerticesLocked()
	ix := &Indexed{
		IDs:      ids,
		Index:    make(map[string]int, len(ids)),
		Out:      make([][]Arc, len(ids)),
		In:       make([][]Arc, len(ids)),
		Directed: g.directed,
		Weighted: g.weighted,
	}
	for i, id := range ids {
		ix.Index[id] = i
	}
	for i, id := range ids {
		for _, e := range g.collectLocked(g.out[id]) {
			ix.Out[i] = append(ix.Out[i], Arc{To: ix.Index[e.Other(id)], Weight: g.Weight(e), Edge: e})
		}
		if !g.directed {
			ix.In[i] = ix.Out[i]
			continue
		}
		for _, e := range g.collectLocked(g.in[id]) {
			ix.In[i] = append(ix.In[i], Arc{To: ix.Index[e.From], Weight: g.Weight(e), Edge: e})
		}
	}

	return ix
}

// N returns the number of vertices.
func (ix *Indexed) N() int { return len(ix.IDs) }
