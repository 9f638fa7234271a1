package algorithm

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphty/core"
)

// ResultSet is the output of one algorithm run, keyed by entity.
//
// Vertices and Edges map an entity ID to its fields; Graph holds
// graph-level fields. All of it lands in Namespace when applied.
type ResultSet struct {
	RunID     uuid.UUID
	Algorithm string
	Namespace string
	Vertices  map[string]core.Fields
	Edges     map[string]core.Fields
	Graph     core.Fields
	Duration  time.Duration
}

// NewResultSet returns an empty ResultSet for algorithmID with a fresh RunID.
func NewResultSet(algorithmID string) *ResultSet {
	return &ResultSet{
		RunID:     uuid.New(),
		Algorithm: algorithmID,
		Namespace: Namespace(algorithmID),
		Vertices:  make(map[string]core.Fields),
		Edges:     make(map[string]core.Fields),
		Graph:     make(core.Fields),
	}
}

// Vertex returns the mutable fields of vertex id, creating them on first use.
func (r *ResultSet) Vertex(id string) core.Fields {
	f, ok := r.Vertices[id]
	if !ok {
		f = make(core.Fields)
		r.Vertices[id] = f
	}

	return f
}

// Edge returns the mutable fields of edge id, creating them on first use.
func (r *ResultSet) Edge(id string) core.Fields {
	f, ok := r.Edges[id]
	if !ok {
		f = make(core.Fields)
		r.Edges[id] = f
	}

	return f
}

// Apply clears Namespace on g and writes the result set in its place.
// Entities that no longer exist are reported as core.ErrNotFound errors
// after everything else was written.
func (r *ResultSet) Apply(g *core.Graph) error {
	g.ClearResults(r.Namespace)

	var firstErr error
	for _, id := range sortedKeys(r.Vertices) {
		if err := g.SetVertexResults(id, r.Namespace, copyFields(r.Vertices[id])); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, id := range sortedKeys(r.Edges) {
		if err := g.SetEdgeResults(id, r.Namespace, copyFields(r.Edges[id])); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if len(r.Graph) > 0 {
		g.SetGraphResults(r.Namespace, copyFields(r.Graph))
	}

	return firstErr
}

func copyFields(f core.Fields) core.Fields {
	out := make(core.Fields, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}

func sortedKeys(m map[string]core.Fields) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
