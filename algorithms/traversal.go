package algorithms

import (
	"context"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/bfs"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/dfs"
	"github.com/katalvlaran/graphty/style"
)

func bfsAdapter() *adapter {
	return &adapter{
		id:   id("bfs"),
		desc: "Breadth-first levels from a source. Options: source (required), maxDepth.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{groups("bfs", "level")}
		},
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			source, err := opts.RequireString("source")
			if err != nil {
				return err
			}
			maxDepth, err := opts.Int("maxDepth", 0)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, source,
				bfs.WithContext(ctx),
				bfs.WithStepHook(hook(ctx)),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}
			for i, v := range res.Order {
				rs.Vertex(v)["level"] = res.Depth[v]
				rs.Vertex(v)["visitOrder"] = i
			}
			rs.Graph["maxLevel"] = res.MaxDepth()
			rs.Graph["visitedCount"] = len(res.Order)

			return nil
		},
	}
}

func dfsAdapter() *adapter {
	return &adapter{
		id:   id("dfs"),
		desc: "Depth-first discovery and finish times. Options: source; without it every component is walked.",
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			source, err := opts.String("source", "")
			if err != nil {
				return err
			}
			dopts := []dfs.Option{dfs.WithContext(ctx), dfs.WithStepHook(hook(ctx))}
			if source == "" {
				dopts = append(dopts, dfs.WithFullTraversal())
			}
			res, err := dfs.DFS(g, source, dopts...)
			if err != nil {
				return err
			}
			for v, d := range res.Discovery {
				rs.Vertex(v)["discoveryTime"] = d
				rs.Vertex(v)["finishTime"] = res.Finish[v]
			}

			return nil
		},
	}
}

func topoAdapter() *adapter {
	return &adapter{
		id:   id("topological-sort"),
		desc: "Topological order of a directed acyclic graph; cycles fail with a cycle error.",
		run: func(ctx context.Context, g *core.Graph, _ algorithm.Options, rs *algorithm.ResultSet) error {
			order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
			if err != nil {
				return err
			}
			for i, v := range order {
				rs.Vertex(v)["topoOrder"] = i
			}

			return nil
		},
	}
}
