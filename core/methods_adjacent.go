// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, InNeighborIDs, InEdges).
// Determinism:
//   - Neighbors()/InEdges() sort by neighbour ID asc.
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold g.mu read lock.

package core

import "sort"

// Neighbors returns the edges leaving id, sorted by the neighbour on the far end.
//
// Neighborhood policy:
//   - Directed graphs: edges with e.From == id.
//   - Undirected graphs: every incident edge; self-loops appear once.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return g.collectLocked(g.out[id]), nil
}

// InEdges returns the edges entering id, sorted by the neighbour on the near end.
// On undirected graphs it equals Neighbors.
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return g.collectLocked(g.in[id]), nil
}

// NeighborIDs returns the IDs reachable over one outgoing edge, sorted.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.out[id]), nil
}

// InNeighborIDs returns the IDs with an edge into id, sorted.
// On undirected graphs it equals NeighborIDs.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.in[id]), nil
}

// AdjacencyList returns a snapshot map vertex → sorted outgoing neighbour IDs.
// Every vertex appears, isolated ones with an empty slice.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	res := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		res[id] = sortedKeys(g.out[id])
	}

	return res
}

func (g *Graph) collectLocked(bucket map[string]string) []*Edge {
	keys := sortedKeys(bucket)
	out := make([]*Edge, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.edges[bucket[k]])
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
