package style

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphty/core"
)

// Target selects the entities a descriptor styles.
type Target string

const (
	TargetNode Target = "node"
	TargetEdge Target = "edge"
)

// GraphInputPrefix marks an input path that reads a graph-level result.
const GraphInputPrefix = "graph:"

var (
	// ErrBadDescriptor is returned for descriptors without output, mapping or a known target.
	ErrBadDescriptor = fmt.Errorf("style: bad descriptor: %w", core.ErrStructural)

	// ErrBadInput is returned by mappings that cannot coerce an input.
	ErrBadInput = fmt.Errorf("style: bad mapping input: %w", core.ErrNumeric)
)

// Mapping computes one style value from the resolved inputs, in Inputs order.
// It must be pure.
type Mapping func(inputs []any) (any, error)

// Descriptor is one suggested style rule.
type Descriptor struct {
	Name    string
	Target  Target
	Inputs  []string
	Output  string
	Mapping Mapping
}

// Validate reports whether d can be evaluated.
func (d Descriptor) Validate() error {
	switch {
	case d.Target != TargetNode && d.Target != TargetEdge:
		return fmt.Errorf("%w: %q: target %q", ErrBadDescriptor, d.Name, d.Target)
	case d.Output == "":
		return fmt.Errorf("%w: %q: empty output", ErrBadDescriptor, d.Name)
	case d.Mapping == nil:
		return fmt.Errorf("%w: %q: nil mapping", ErrBadDescriptor, d.Name)
	}
	for _, in := range d.Inputs {
		if _, _, err := core.SplitResultPath(strings.TrimPrefix(in, GraphInputPrefix)); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrBadDescriptor, d.Name, err)
		}
	}

	return nil
}

// Key identifies the style slot a descriptor writes.
func (d Descriptor) Key() string { return string(d.Target) + "/" + d.Output }

// Source is a named group of descriptors, usually one algorithm's suggestions.
type Source struct {
	Name        string
	Descriptors []Descriptor
}

// Layer is a descriptor together with the source that contributed it.
type Layer struct {
	Source string
	Descriptor
}

// Compose folds sources in order. A descriptor whose (Target, Output) was
// already written replaces the earlier layer at its position; new keys are
// appended. Composing the same sources twice yields the same layers.
func Compose(sources ...Source) []Layer {
	var layers []Layer
	pos := make(map[string]int)
	for _, src := range sources {
		for _, d := range src.Descriptors {
			l := Layer{Source: src.Name, Descriptor: d}
			if i, ok := pos[d.Key()]; ok {
				layers[i] = l
				continue
			}
			pos[d.Key()] = len(layers)
			layers = append(layers, l)
		}
	}

	return layers
}

// Values holds evaluated styles: Nodes[vertexID][output], Edges[edgeID][output].
type Values struct {
	Nodes map[string]map[string]any
	Edges map[string]map[string]any
}

// Node returns the value of output on vertex id.
func (v *Values) Node(id, output string) (any, bool) {
	x, ok := v.Nodes[id][output]

	return x, ok
}

// Edge returns the value of output on edge id.
func (v *Values) Edge(id, output string) (any, bool) {
	x, ok := v.Edges[id][output]

	return x, ok
}

// Evaluate applies layers to g in order. Entities missing any input are
// skipped for that layer. The first invalid descriptor or failing mapping
// aborts the evaluation.
func Evaluate(g *core.Graph, layers []Layer) (*Values, error) {
	vals := &Values{
		Nodes: make(map[string]map[string]any),
		Edges: make(map[string]map[string]any),
	}
	for _, l := range layers {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		var (
			ids    []string
			lookup func(id, path string) (any, bool)
			out    map[string]map[string]any
		)
		switch l.Target {
		case TargetNode:
			ids, lookup, out = g.Vertices(), g.VertexResult, vals.Nodes
		case TargetEdge:
			for _, e := range g.Edges() {
				ids = append(ids, e.ID)
			}
			lookup, out = g.EdgeResult, vals.Edges
		}

		for _, id := range ids {
			inputs, ok := resolve(g, id, l.Inputs, lookup)
			if !ok {
				continue
			}
			v, err := l.Mapping(inputs)
			if err != nil {
				return nil, fmt.Errorf("style: %s %s %s %q: %w", l.Source, l.Target, id, l.Output, err)
			}
			if out[id] == nil {
				out[id] = make(map[string]any)
			}
			out[id][l.Output] = v
		}
	}

	return vals, nil
}

func resolve(g *core.Graph, id string, paths []string, lookup func(id, path string) (any, bool)) ([]any, bool) {
	inputs := make([]any, len(paths))
	for i, p := range paths {
		var (
			v  any
			ok bool
		)
		if gp, isGraph := strings.CutPrefix(p, GraphInputPrefix); isGraph {
			v, ok = g.GraphResult(gp)
		} else {
			v, ok = lookup(id, p)
		}
		if !ok {
			return nil, false
		}
		inputs[i] = v
	}

	return inputs, true
}
