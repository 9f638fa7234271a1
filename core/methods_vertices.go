// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Behavior highlights:
//   - Adding an existing vertex is a no-op; options are ignored in that case.
//   - Initializes Data to a non-nil map when no WithVertexData is given.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id, opts)

	return nil
}

func (g *Graph) addVertexLocked(id string, opts []VertexOption) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	v := &Vertex{ID: id}
	for _, opt := range opts {
		opt(v)
	}
	if v.Data == nil {
		v.Data = make(map[string]any)
	}
	g.vertices[id] = v
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// GetVertex returns the vertex with the given ID.
// The returned *Vertex is live; treat it as read-only.
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes the vertex and every incident edge.
// Returns false if the vertex does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return false
	}
	// Outgoing (and, for undirected graphs, all incident) edges.
	for _, eid := range g.out[id] {
		g.removeEdgeLocked(g.edges[eid])
	}
	// Incoming edges on directed graphs.
	for _, eid := range g.in[id] {
		if e, ok := g.edges[eid]; ok {
			g.removeEdgeLocked(e)
		}
	}
	delete(g.out, id)
	delete(g.in, id)
	delete(g.vertices, id)

	return true
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedVerticesLocked()
}

func (g *Graph) sortedVerticesLocked() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbours on undirected graphs and
// InDegree+OutDegree on directed graphs.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.out[id]), nil
	}

	return len(g.out[id]) + len(g.in[id]), nil
}

// OutDegree returns the number of edges leaving id. On undirected graphs it
// equals Degree.
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.out[id]), nil
}

// InDegree returns the number of edges entering id. On undirected graphs it
// equals Degree.
func (g *Graph) InDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.in[id]), nil
}
