package algorithms

import (
	"context"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/components"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/flow"
	"github.com/katalvlaran/graphty/matching"
	"github.com/katalvlaran/graphty/prim_kruskal"
	"github.com/katalvlaran/graphty/style"
)

func mstAdapter() *adapter {
	return &adapter{
		id:   id("mst"),
		desc: "Minimum spanning tree of an undirected graph. Options: method (kruskal|prim), root.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{
				flag("mst", "inMST", style.TargetEdge, EdgeColor, highlight, muted),
				flag("mst", "inMST", style.TargetEdge, EdgeWidth, 3.0, 1.0),
			}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			method, err := opts.String("method", prim_kruskal.MethodKruskal)
			if err != nil {
				return err
			}
			root, err := opts.String("root", "")
			if err != nil {
				return err
			}
			tree, total, err := prim_kruskal.Compute(g,
				prim_kruskal.WithMethod(method),
				prim_kruskal.WithRoot(root),
				prim_kruskal.WithContext(ctx),
				prim_kruskal.WithStepHook(hook(ctx)),
			)
			if err != nil {
				return err
			}
			for _, e := range g.Edges() {
				rs.Edge(e.ID)["inMST"] = false
			}
			for _, e := range tree {
				rs.Edge(e.ID)["inMST"] = true
			}
			rs.Graph["totalWeight"] = total
			rs.Graph["edgeCount"] = len(tree)

			return nil
		},
	}
}

// partition wraps a components function writing componentId per vertex.
func partition(name, desc string, fn func(*core.Graph, ...components.Option) (*components.Result, error)) *adapter {
	return &adapter{
		id:   id(name),
		desc: desc,
		styles: func() []style.Descriptor {
			return []style.Descriptor{groups(name, "componentId")}
		},
		run: func(ctx context.Context, g *core.Graph, _ algorithm.Options, rs *algorithm.ResultSet) error {
			res, err := fn(g, components.WithContext(ctx), components.WithStepHook(hook(ctx)))
			if err != nil {
				return err
			}
			for v, c := range res.Membership {
				rs.Vertex(v)["componentId"] = c
			}
			rs.Graph["componentCount"] = res.Count()

			return nil
		},
	}
}

func componentsAdapter() *adapter {
	return partition("components",
		"Connected components; weak connectivity on directed graphs.",
		components.ConnectedComponents)
}

func sccAdapter() *adapter {
	return partition("scc",
		"Strongly connected components (Tarjan).",
		components.StronglyConnected)
}

// flowOptions reads source, sink and method.
func flowOptions(ctx context.Context, opts algorithm.Options) (string, string, string, flow.FlowOptions, error) {
	fo := flow.DefaultOptions()
	fo.Ctx = ctx
	fo.StepHook = hook(ctx)
	source, err := opts.RequireString("source")
	if err != nil {
		return "", "", "", fo, err
	}
	sink, err := opts.RequireString("sink")
	if err != nil {
		return "", "", "", fo, err
	}
	method, err := opts.String("method", flow.MethodEdmondsKarp)
	if err != nil {
		return "", "", "", fo, err
	}

	return source, sink, method, fo, nil
}

func maxFlowAdapter() *adapter {
	return &adapter{
		id:   id("max-flow"),
		desc: "Maximum flow treating weights as capacities. Options: source, sink (required), method (edmonds-karp|ford-fulkerson|dinic).",
		styles: func() []style.Descriptor {
			return []style.Descriptor{{
				Name:    "max-flow width",
				Target:  style.TargetEdge,
				Inputs:  []string{path("max-flow", "flow"), graphPath("max-flow", "maxFlow")},
				Output:  EdgeWidth,
				Mapping: mustCEL("double(inputs[1]) == 0.0 ? 1.0 : 1.0 + 4.0 * (double(inputs[0]) < 0.0 ? -double(inputs[0]) : double(inputs[0])) / double(inputs[1])"),
			}}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			source, sink, method, fo, err := flowOptions(ctx, opts)
			if err != nil {
				return err
			}
			res, err := flow.MaxFlow(g, source, sink, method, fo)
			if err != nil {
				return err
			}
			for eid, f := range res.EdgeFlow {
				rs.Edge(eid)["flow"] = f
			}
			rs.Graph["maxFlow"] = res.MaxFlow
			rs.Graph["augmentations"] = res.Augmentations

			return nil
		},
	}
}

func minCutAdapter() *adapter {
	return &adapter{
		id:   id("min-cut"),
		desc: "Minimum s-t cut from the final residual network. Options: source, sink (required), method.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{
				flag("min-cut", "inCut", style.TargetEdge, EdgeColor, highlight, muted),
				{
					Name:    "min-cut partition",
					Target:  style.TargetNode,
					Inputs:  []string{path("min-cut", "partition")},
					Output:  NodeColor,
					Mapping: mustCEL(`value == "source" ? "#1f77b4" : "#ff7f0e"`),
				},
			}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			source, sink, method, fo, err := flowOptions(ctx, opts)
			if err != nil {
				return err
			}
			cut, err := flow.MinCut(g, source, sink, method, fo)
			if err != nil {
				return err
			}
			for _, v := range cut.SourceSide {
				rs.Vertex(v)["partition"] = "source"
			}
			for _, v := range cut.SinkSide {
				rs.Vertex(v)["partition"] = "sink"
			}
			for _, e := range g.Edges() {
				rs.Edge(e.ID)["inCut"] = false
			}
			for _, e := range cut.Edges {
				rs.Edge(e.ID)["inCut"] = true
			}
			rs.Graph["cutValue"] = cut.Value
			rs.Graph["maxFlow"] = cut.Flow.MaxFlow

			return nil
		},
	}
}

func matchingAdapter() *adapter {
	return &adapter{
		id:   id("matching"),
		desc: "Maximum bipartite matching. Options: left (vertex list) or partition=auto to two-colour the graph.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{
				flag("matching", "matched", style.TargetEdge, EdgeColor, highlight, muted),
				flag("matching", "matched", style.TargetEdge, EdgeWidth, 3.0, 1.0),
			}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			left, err := opts.Strings("left")
			if err != nil {
				return err
			}
			mode, err := opts.String("partition", "")
			if err != nil {
				return err
			}
			if len(left) == 0 && mode == "auto" {
				if left, err = matching.Bipartition(g); err != nil {
					return err
				}
			}
			res, err := matching.BipartiteMatching(g, left,
				matching.WithContext(ctx),
				matching.WithStepHook(hook(ctx)),
			)
			if err != nil {
				return err
			}
			for v, m := range res.Mate {
				rs.Vertex(v)["matchedWith"] = m
			}
			for _, e := range g.Edges() {
				rs.Edge(e.ID)["matched"] = false
			}
			for _, e := range res.Edges {
				rs.Edge(e.ID)["matched"] = true
			}
			rs.Graph["matchingSize"] = res.Size()

			return nil
		},
	}
}
