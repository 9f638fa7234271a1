package style_test

import (
	"fmt"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/style"
)

// ExampleCompose shows a later source overriding node.size while an
// earlier colour layer survives.
func ExampleCompose() {
	g := core.NewGraph()
	_, _ = g.AddEdge("hub", "a")
	_, _ = g.AddEdge("hub", "b")
	_ = g.SetVertexResults("hub", "demo.rank", core.Fields{"pct": 1.0})
	_ = g.SetVertexResults("a", "demo.rank", core.Fields{"pct": 0.5})

	base := style.Source{Name: "base", Descriptors: []style.Descriptor{
		{Target: style.TargetNode, Output: "node.size", Mapping: style.Constant(1.0)},
		{Target: style.TargetNode, Output: "node.color", Inputs: []string{"demo.rank.pct"},
			Mapping: style.MustColorRamp("#0000ff", "#ff0000")},
	}}
	rank := style.Source{Name: "rank", Descriptors: []style.Descriptor{
		{Target: style.TargetNode, Output: "node.size", Inputs: []string{"demo.rank.pct"},
			Mapping: style.LinearScale(0, 1, 1, 5)},
	}}

	vals, err := style.Evaluate(g, style.Compose(base, rank))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range g.Vertices() {
		fmt.Println(id, vals.Nodes[id])
	}
	// Output:
	// a map[node.color:#800080 node.size:3]
	// b map[]
	// hub map[node.color:#ff0000 node.size:5]
}
