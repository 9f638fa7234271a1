package algorithms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/style"
)

// ErrGraphNil is returned when an adapter is run without a graph.
var ErrGraphNil = fmt.Errorf("algorithms: graph is nil: %w", core.ErrStructural)

// Style outputs written by the suggested descriptors.
const (
	NodeSize  = "node.size"
	NodeColor = "node.color"
	EdgeWidth = "edge.width"
	EdgeColor = "edge.color"
)

// categorical colours for community and component IDs.
var categorical = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

const (
	highlight = "#ff6600"
	muted     = "#c8c8c8"
)

func path(name, field string) string { return Namespace + "." + name + "." + field }

func graphPath(name, field string) string { return style.GraphInputPrefix + path(name, field) }

// sizeBy scales a [0,1] vertex field onto node sizes 1..5.
func sizeBy(name, field string) style.Descriptor {
	return style.Descriptor{
		Name:    name + " size",
		Target:  style.TargetNode,
		Inputs:  []string{path(name, field)},
		Output:  NodeSize,
		Mapping: style.LinearScale(0, 1, 1, 5),
	}
}

// sizeRelative scales a vertex field by a graph-level maximum onto sizes 1..5.
func sizeRelative(name, field, maxField string) style.Descriptor {
	return style.Descriptor{
		Name:    name + " size",
		Target:  style.TargetNode,
		Inputs:  []string{path(name, field), graphPath(name, maxField)},
		Output:  NodeSize,
		Mapping: style.Ratio(style.LinearScale(0, 1, 1, 5)),
	}
}

// heat colours a [0,1] vertex field from cool blue to hot red.
func heat(name, field string) style.Descriptor {
	return style.Descriptor{
		Name:    name + " heat",
		Target:  style.TargetNode,
		Inputs:  []string{path(name, field)},
		Output:  NodeColor,
		Mapping: style.MustColorRamp("#313695", "#ffffbf", "#a50026"),
	}
}

// heatRelative colours a vertex field relative to a graph-level maximum.
func heatRelative(name, field, maxField string) style.Descriptor {
	return style.Descriptor{
		Name:    name + " heat",
		Target:  style.TargetNode,
		Inputs:  []string{path(name, field), graphPath(name, maxField)},
		Output:  NodeColor,
		Mapping: style.Ratio(style.MustColorRamp("#313695", "#ffffbf", "#a50026")),
	}
}

// groups colours vertices by an integer group field.
func groups(name, field string) style.Descriptor {
	return style.Descriptor{
		Name:    name + " groups",
		Target:  style.TargetNode,
		Inputs:  []string{path(name, field)},
		Output:  NodeColor,
		Mapping: style.Palette(categorical...),
	}
}

// flag highlights entities whose boolean field is true.
func flag(name, field string, target style.Target, output string, on, off any) style.Descriptor {
	return style.Descriptor{
		Name:    name + " " + field,
		Target:  target,
		Inputs:  []string{path(name, field)},
		Output:  output,
		Mapping: mustCEL(fmt.Sprintf("value == true ? %s : %s", celLiteral(on), celLiteral(off))),
	}
}

func mustCEL(expr string) style.Mapping {
	m, err := style.CELMapping(expr)
	if err != nil {
		panic(err)
	}

	return m
}

// celLiteral renders v as a CEL literal; floats always keep a decimal point
// so both branches of a conditional type-check as double.
func celLiteral(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}

		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
