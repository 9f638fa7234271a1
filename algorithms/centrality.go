package algorithms

import (
	"context"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/centrality"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/style"
)

// centralityOptions maps the shared keys tolerance, maxIterations,
// allowNonConvergence, damping, alpha, beta and normalized.
func centralityOptions(ctx context.Context, opts algorithm.Options) ([]centrality.Option, error) {
	out := []centrality.Option{centrality.WithContext(ctx), centrality.WithStepHook(hook(ctx))}
	floats := []struct {
		key string
		opt func(float64) centrality.Option
	}{
		{"tolerance", centrality.WithTolerance},
		{"damping", centrality.WithDamping},
		{"alpha", centrality.WithAlpha},
		{"beta", centrality.WithBeta},
	}
	for _, f := range floats {
		if !opts.Has(f.key) {
			continue
		}
		v, err := opts.Float(f.key, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, f.opt(v))
	}
	if opts.Has("maxIterations") {
		n, err := opts.Int("maxIterations", 0)
		if err != nil {
			return nil, err
		}
		out = append(out, centrality.WithMaxIterations(n))
	}
	for key, opt := range map[string]centrality.Option{
		"allowNonConvergence": centrality.WithAllowNonConvergence(),
		"normalized":          centrality.WithNormalized(),
	} {
		on, err := opts.Bool(key, false)
		if err != nil {
			return nil, err
		}
		if on {
			out = append(out, opt)
		}
	}

	return out, nil
}

func degreeAdapter() *adapter {
	return &adapter{
		id:   id("degree"),
		desc: "Degree centrality with in/out degree and percentages of the maximum.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{sizeBy("degree", "degreePct"), heat("degree", "degreePct")}
		},
		run: func(_ context.Context, g *core.Graph, _ algorithm.Options, rs *algorithm.ResultSet) error {
			res, err := centrality.Degree(g)
			if err != nil {
				return err
			}
			for v, d := range res.Degree {
				rs.Vertex(v)["degree"] = d
				rs.Vertex(v)["inDegree"] = res.In[v]
				rs.Vertex(v)["outDegree"] = res.Out[v]
				rs.Vertex(v)["degreePct"] = res.Pct[v]
				rs.Vertex(v)["inDegreePct"] = res.InPct[v]
				rs.Vertex(v)["outDegreePct"] = res.OutPct[v]
			}
			rs.Graph["maxDegree"] = res.Max
			rs.Graph["maxInDegree"] = res.MaxIn
			rs.Graph["maxOutDegree"] = res.MaxOut

			return nil
		},
	}
}

func betweennessAdapter() *adapter {
	return &adapter{
		id:   id("betweenness"),
		desc: "Brandes betweenness for vertices and edges. Options: normalized.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{sizeBy("betweenness", "scorePct")}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			copts, err := centralityOptions(ctx, opts)
			if err != nil {
				return err
			}
			res, err := centrality.Betweenness(g, copts...)
			if err != nil {
				return err
			}
			for v, s := range res.Vertex {
				rs.Vertex(v)["score"] = s
				rs.Vertex(v)["scorePct"] = res.Pct[v]
			}
			for e, s := range res.Edge {
				rs.Edge(e)["score"] = s
			}

			return nil
		},
	}
}

func closenessAdapter() *adapter {
	return &adapter{
		id:   id("closeness"),
		desc: "Wasserman–Faust closeness over outgoing shortest paths.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{heat("closeness", "score")}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			copts, err := centralityOptions(ctx, opts)
			if err != nil {
				return err
			}
			scores, err := centrality.Closeness(g, copts...)
			if err != nil {
				return err
			}
			for v, s := range scores {
				rs.Vertex(v)["score"] = s
			}

			return nil
		},
	}
}

// iterative wraps a power-iteration measure writing field on every vertex.
func iterative(
	name, field, desc string,
	fn func(*core.Graph, ...centrality.Option) (*centrality.IterativeResult, error),
	styles func() []style.Descriptor,
) *adapter {
	return &adapter{
		id:     id(name),
		desc:   desc,
		styles: styles,
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			copts, err := centralityOptions(ctx, opts)
			if err != nil {
				return err
			}
			res, err := fn(g, copts...)
			if err != nil {
				return err
			}
			maxScore := 0.0
			for v, s := range res.Scores {
				rs.Vertex(v)[field] = s
				if s > maxScore {
					maxScore = s
				}
			}
			rs.Graph["converged"] = res.Converged
			rs.Graph["iterations"] = res.Iterations
			if name == "pagerank" {
				rs.Graph["maxRank"] = maxScore
			}

			return nil
		},
	}
}

func eigenvectorAdapter() *adapter {
	return iterative("eigenvector", "score",
		"Eigenvector centrality by shifted power iteration. Options: tolerance, maxIterations, allowNonConvergence.",
		centrality.Eigenvector,
		func() []style.Descriptor { return []style.Descriptor{heat("eigenvector", "score")} })
}

func pageRankAdapter() *adapter {
	return iterative("pagerank", "rank",
		"PageRank with uniform dangling redistribution. Options: damping, tolerance, maxIterations, allowNonConvergence.",
		centrality.PageRank,
		func() []style.Descriptor {
			return []style.Descriptor{
				sizeRelative("pagerank", "rank", "maxRank"),
				heatRelative("pagerank", "rank", "maxRank"),
			}
		})
}

func katzAdapter() *adapter {
	return iterative("katz", "score",
		"Katz centrality x = αAᵀx + β. Options: alpha, beta, tolerance, maxIterations, allowNonConvergence.",
		centrality.Katz,
		func() []style.Descriptor { return []style.Descriptor{heat("katz", "score")} })
}

func hitsAdapter() *adapter {
	return &adapter{
		id:   id("hits"),
		desc: "HITS hub and authority scores. Options: tolerance, maxIterations, allowNonConvergence.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{{
				Name:    "hits authority size",
				Target:  style.TargetNode,
				Inputs:  []string{path("hits", "authority")},
				Output:  NodeSize,
				Mapping: style.LinearScale(0, 0.5, 1, 5),
			}}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			copts, err := centralityOptions(ctx, opts)
			if err != nil {
				return err
			}
			res, err := centrality.HITS(g, copts...)
			if err != nil {
				return err
			}
			for v, h := range res.Hubs {
				rs.Vertex(v)["hub"] = h
				rs.Vertex(v)["authority"] = res.Authorities[v]
			}
			rs.Graph["converged"] = res.Converged
			rs.Graph["iterations"] = res.Iterations

			return nil
		},
	}
}
