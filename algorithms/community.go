package algorithms

import (
	"context"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/community"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/style"
)

// communityOptions maps resolution, threshold, seed, maxLevels,
// maxIterations and targetCount.
func communityOptions(ctx context.Context, opts algorithm.Options) ([]community.Option, error) {
	out := []community.Option{community.WithContext(ctx), community.WithStepHook(hook(ctx))}
	if opts.Has("resolution") {
		v, err := opts.Float("resolution", 0)
		if err != nil {
			return nil, err
		}
		out = append(out, community.WithResolution(v))
	}
	if opts.Has("threshold") {
		v, err := opts.Float("threshold", 0)
		if err != nil {
			return nil, err
		}
		out = append(out, community.WithThreshold(v))
	}
	if opts.Has("seed") {
		v, err := opts.Int64("seed", 0)
		if err != nil {
			return nil, err
		}
		out = append(out, community.WithSeed(v))
	}
	ints := []struct {
		key string
		opt func(int) community.Option
	}{
		{"maxLevels", community.WithMaxLevels},
		{"maxIterations", community.WithMaxIterations},
		{"targetCount", community.WithTargetCount},
	}
	for _, i := range ints {
		if !opts.Has(i.key) {
			continue
		}
		v, err := opts.Int(i.key, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, i.opt(v))
	}

	return out, nil
}

// detector wraps a community detection function; every variant writes
// communityId, modularity and communityCount.
func detector(name, desc string, fn func(*core.Graph, ...community.Option) (*community.Result, error)) *adapter {
	return &adapter{
		id:   id(name),
		desc: desc,
		styles: func() []style.Descriptor {
			return []style.Descriptor{groups(name, "communityId")}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			copts, err := communityOptions(ctx, opts)
			if err != nil {
				return err
			}
			res, err := fn(g, copts...)
			if err != nil {
				return err
			}
			for v, c := range res.Membership {
				rs.Vertex(v)["communityId"] = c
			}
			rs.Graph["modularity"] = res.Modularity
			rs.Graph["communityCount"] = res.Count()

			return nil
		},
	}
}

func louvainAdapter() *adapter {
	return detector("louvain",
		"Louvain modularity optimisation. Options: resolution, threshold, seed, maxLevels.",
		community.Louvain)
}

func leidenAdapter() *adapter {
	return detector("leiden",
		"Leiden with connectivity-preserving refinement. Options: resolution, threshold, seed, maxLevels.",
		community.Leiden)
}

func girvanNewmanAdapter() *adapter {
	return detector("girvan-newman",
		"Girvan–Newman edge-betweenness division. Options: targetCount, resolution.",
		community.GirvanNewman)
}

func labelPropagationAdapter() *adapter {
	return detector("label-propagation",
		"Weighted majority label propagation. Options: maxIterations.",
		community.LabelPropagation)
}
