package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphty/core"
)

var (
	// ErrDecode is returned for malformed documents.
	ErrDecode = fmt.Errorf("ingest: malformed document: %w", core.ErrStructural)

	// ErrEmptyID is returned for a node or edge endpoint without an ID.
	ErrEmptyID = fmt.Errorf("ingest: empty vertex id: %w", core.ErrStructural)
)

// Document is the serialized form of a graph.
type Document struct {
	Directed bool  `yaml:"directed" json:"directed"`
	Weighted *bool `yaml:"weighted,omitempty" json:"weighted,omitempty"`
	Loops    bool  `yaml:"loops,omitempty" json:"loops,omitempty"`

	Nodes []Node `yaml:"nodes" json:"nodes"`
	Edges []Edge `yaml:"edges" json:"edges"`

	// Results holds graph-level results keyed by namespace (export only).
	Results map[string]core.Fields `yaml:"results,omitempty" json:"results,omitempty"`
}

// Node is one vertex record.
type Node struct {
	ID      string                 `yaml:"id" json:"id"`
	Data    map[string]any         `yaml:"data,omitempty" json:"data,omitempty"`
	Results map[string]core.Fields `yaml:"results,omitempty" json:"results,omitempty"`
}

// Edge is one edge record. ID is filled on export and ignored on import.
type Edge struct {
	ID      string                 `yaml:"id,omitempty" json:"id,omitempty"`
	Source  string                 `yaml:"source" json:"source"`
	Target  string                 `yaml:"target" json:"target"`
	Weight  *float64               `yaml:"weight,omitempty" json:"weight,omitempty"`
	Data    map[string]any         `yaml:"data,omitempty" json:"data,omitempty"`
	Results map[string]core.Fields `yaml:"results,omitempty" json:"results,omitempty"`
}

// Decode reads one document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &doc, nil
}

// Parse decodes data.
func Parse(data []byte) (*Document, error) { return Decode(bytes.NewReader(data)) }

// Load reads and decodes the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("ingest: encode: %w", err)
	}

	return enc.Close()
}

// IsWeighted reports the explicit weighted flag, or infers it from edges.
func (d *Document) IsWeighted() bool {
	if d.Weighted != nil {
		return *d.Weighted
	}
	for _, e := range d.Edges {
		if e.Weight != nil && *e.Weight != core.DefaultWeight {
			return true
		}
	}

	return false
}

// Build creates a graph from the document. Nodes are added first in
// document order, then edges; re-adding a pair updates the existing edge.
func (d *Document) Build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.IsWeighted() {
		opts = append(opts, core.WithWeighted())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for i, n := range d.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: nodes[%d]", ErrEmptyID, i)
		}
		var vopts []core.VertexOption
		if n.Data != nil {
			vopts = append(vopts, core.WithVertexData(n.Data))
		}
		if err := g.AddVertex(n.ID, vopts...); err != nil {
			return nil, fmt.Errorf("ingest: nodes[%d]: %w", i, err)
		}
	}
	for i, e := range d.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("%w: edges[%d]", ErrEmptyID, i)
		}
		var eopts []core.EdgeOption
		if e.Weight != nil {
			eopts = append(eopts, core.WithWeight(*e.Weight))
		}
		if e.Data != nil {
			eopts = append(eopts, core.WithEdgeData(e.Data))
		}
		if _, err := g.AddEdge(e.Source, e.Target, eopts...); err != nil {
			return nil, fmt.Errorf("ingest: edges[%d] %s→%s: %w", i, e.Source, e.Target, err)
		}
	}

	return g, nil
}

// FromGraph exports g in sorted vertex and edge ID order. With results,
// every stored namespace is included.
func FromGraph(g *core.Graph, results bool) *Document {
	weighted := g.Weighted()
	doc := &Document{Directed: g.Directed(), Weighted: &weighted, Loops: g.Looped()}
	for _, id := range g.Vertices() {
		n := Node{ID: id}
		if v, err := g.GetVertex(id); err == nil && len(v.Data) > 0 {
			n.Data = v.Data
		}
		if results {
			n.Results = nonEmpty(g.VertexResults(id))
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, e := range g.Edges() {
		rec := Edge{ID: e.ID, Source: e.From, Target: e.To}
		if weighted {
			w := e.Weight
			rec.Weight = &w
		}
		if len(e.Data) > 0 {
			rec.Data = e.Data
		}
		if results {
			rec.Results = nonEmpty(g.EdgeResults(e.ID))
		}
		doc.Edges = append(doc.Edges, rec)
	}
	if results {
		doc.Results = nonEmpty(g.GraphResults())
	}

	return doc
}

func nonEmpty(m map[string]core.Fields) map[string]core.Fields {
	if len(m) == 0 {
		return nil
	}

	return m
}
