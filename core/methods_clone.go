// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID so textual edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read lock on the source; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices
// (data and results copied), but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	clone.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Data: copyData(v.Data), results: v.results.clone()}
	}

	return clone
}

// Clone returns a deep, independent copy: configuration, vertices, edges,
// adjacency and results. Mutating one graph never affects the other.
// Payload maps are copied one level deep; values inside them are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{
			ID: eid, From: e.From, To: e.To, Weight: e.Weight,
			Data: copyData(e.Data), results: e.results.clone(),
		}
		link(clone.out, e.From, e.To, eid)
		if clone.directed {
			link(clone.in, e.To, e.From, eid)
		} else if e.From != e.To {
			link(clone.out, e.To, e.From, eid)
		}
	}
	clone.results = g.results.clone()

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// nextEdgeID restarts, so IDs resume from "e1".
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.out = make(map[string]map[string]string)
	if g.directed {
		g.in = make(map[string]map[string]string)
	} else {
		g.in = g.out
	}
	g.results = make(resultMap)
	g.nextEdgeID = 0
}
