// File: results.go
// Role: Namespaced result storage on vertices, edges and the graph.
//
// Layout:
//   - results[namespace][field] = value, namespace like "graphty.degree".
//   - A dotted path "graphty.degree.degreePct" splits at its last dot into
//     namespace "graphty.degree" and field "degreePct".
//
// Concurrency:
//   - Writes take g.mu write lock, so algorithms writing distinct namespaces
//     may run concurrently; writers to one namespace are last-writer-wins.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// Fields holds the result fields of one namespace on one entity.
type Fields map[string]any

type resultMap map[string]Fields

func (m resultMap) clone() resultMap {
	out := make(resultMap, len(m))
	for ns, f := range m {
		cp := make(Fields, len(f))
		for k, v := range f {
			cp[k] = v
		}
		out[ns] = cp
	}

	return out
}

func (m resultMap) get(path string) (any, bool) {
	ns, field, err := SplitResultPath(path)
	if err != nil {
		return nil, false
	}
	v, ok := m[ns][field]

	return v, ok
}

// SplitResultPath splits "graphty.degree.degreePct" into
// ("graphty.degree", "degreePct").
func SplitResultPath(path string) (namespace, field string, err error) {
	i := strings.LastIndexByte(path, '.')
	if i <= 0 || i == len(path)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrBadResultPath, path)
	}

	return path[:i], path[i+1:], nil
}

// SetVertexResults replaces the fields of namespace on vertex id.
func (g *Graph) SetVertexResults(id, namespace string, fields Fields) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if v.results == nil {
		v.results = make(resultMap)
	}
	v.results[namespace] = fields

	return nil
}

// SetEdgeResults replaces the fields of namespace on edge edgeID.
func (g *Graph) SetEdgeResults(edgeID, namespace string, fields Fields) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, edgeID)
	}
	if e.results == nil {
		e.results = make(resultMap)
	}
	e.results[namespace] = fields

	return nil
}

// SetGraphResults replaces the graph-level fields of namespace.
func (g *Graph) SetGraphResults(namespace string, fields Fields) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results[namespace] = fields
}

// VertexResult looks up a dotted result path on vertex id.
func (g *Graph) VertexResult(id, path string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}

	return v.results.get(path)
}

// EdgeResult looks up a dotted result path on edge edgeID.
func (g *Graph) EdgeResult(edgeID, path string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, false
	}

	return e.results.get(path)
}

// GraphResult looks up a dotted result path on the graph itself.
func (g *Graph) GraphResult(path string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.results.get(path)
}

// GraphResults returns a copy of every graph-level namespace.
func (g *Graph) GraphResults() map[string]Fields {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.results.clone()
}

// VertexResults returns a copy of every namespace stored on vertex id.
func (g *Graph) VertexResults(id string) map[string]Fields {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}

	return v.results.clone()
}

// EdgeResults returns a copy of every namespace stored on edge edgeID.
func (g *Graph) EdgeResults(edgeID string) map[string]Fields {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil
	}

	return e.results.clone()
}

// ResultNamespaces lists every namespace present anywhere in the graph, sorted.
func (g *Graph) ResultNamespaces() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[string]struct{})
	for ns := range g.results {
		seen[ns] = struct{}{}
	}
	for _, v := range g.vertices {
		for ns := range v.results {
			seen[ns] = struct{}{}
		}
	}
	for _, e := range g.edges {
		for ns := range e.results {
			seen[ns] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)

	return out
}

// ClearResults drops namespace from every vertex, edge and the graph.
// Complexity: O(V + E).
func (g *Graph) ClearResults(namespace string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.results, namespace)
	for _, v := range g.vertices {
		delete(v.results, namespace)
	}
	for _, e := range g.edges {
		delete(e.results, namespace)
	}
}
