// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc (numeric order of the counter).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates the logical edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs and the weight/loop policies.
//  2. Auto-create missing endpoints.
//  3. If the pair already has an edge, update its weight/data and return its ID.
//  4. Otherwise allocate an ID, store the edge and link adjacency
//     (mirrored on undirected graphs).
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	probe := Edge{Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&probe)
	}
	if !g.weighted && probe.Weight != DefaultWeight {
		return "", fmt.Errorf("%w: %g on %s→%s", ErrBadWeight, probe.Weight, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from, nil)
	g.addVertexLocked(to, nil)

	if eid, ok := g.out[from][to]; ok {
		e := g.edges[eid]
		e.Weight = probe.Weight
		if probe.Data != nil {
			e.Data = probe.Data
		}

		return eid, nil
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: probe.Weight, Data: probe.Data}
	if e.Data == nil {
		e.Data = make(map[string]any)
	}
	g.edges[eid] = e
	link(g.out, from, to, eid)
	if g.directed {
		link(g.in, to, from, eid)
	} else if from != to {
		link(g.out, to, from, eid)
	}

	return eid, nil
}

// RemoveEdge deletes the logical edge between from and to.
// On undirected graphs either endpoint order removes the same single edge.
// Returns false if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	eid, ok := g.out[from][to]
	if !ok {
		return false
	}
	g.removeEdgeLocked(g.edges[eid])

	return true
}

// RemoveEdgeByID deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdgeByID(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

// removeEdgeLocked unlinks e from every adjacency map and the catalog.
func (g *Graph) removeEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	unlink(g.out, e.From, e.To)
	if g.directed {
		unlink(g.in, e.To, e.From)
	} else {
		unlink(g.out, e.To, e.From)
	}
}

// HasEdge reports whether an edge from→to exists. Undirected edges are
// mirrored, so HasEdge(a,b) == HasEdge(b,a) there.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// EdgeBetween returns the edge from→to (either orientation on undirected graphs).
func (g *Graph) EdgeBetween(from, to string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.out[from][to]
	if !ok {
		return nil, false
	}

	return g.edges[eid], true
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge is live; treat it as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by creation order of their IDs.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdgesLocked()
}

func (g *Graph) sortedEdgesLocked() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns the number of logical edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// edgeIDLess orders "e2" before "e10".
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return strings.Compare(a, b) < 0
}

// nextEdgeID returns a new unique textual edge ID. Caller holds g.mu.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}

func link(adj map[string]map[string]string, a, b, eid string) {
	inner, ok := adj[a]
	if !ok {
		inner = make(map[string]string)
		adj[a] = inner
	}
	inner[b] = eid
}

func unlink(adj map[string]map[string]string, a, b string) {
	if inner, ok := adj[a]; ok {
		delete(inner, b)
		if len(inner) == 0 {
			delete(adj, a)
		}
	}
}
