package algorithms

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/bellmanford"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/dijkstra"
	"github.com/katalvlaran/graphty/floydwarshall"
	"github.com/katalvlaran/graphty/style"
)

// pathStyles highlight the reconstructed source→target path.
func pathStyles(name string) func() []style.Descriptor {
	return func() []style.Descriptor {
		return []style.Descriptor{
			flag(name, "isInPath", style.TargetNode, NodeColor, highlight, muted),
			flag(name, "isInPath", style.TargetEdge, EdgeColor, highlight, muted),
			flag(name, "isInPath", style.TargetEdge, EdgeWidth, 3.0, 1.0),
		}
	}
}

// endpoints reads source (required) and target (optional) and checks both exist.
func endpoints(g *core.Graph, opts algorithm.Options) (string, string, error) {
	source, err := opts.RequireString("source")
	if err != nil {
		return "", "", err
	}
	target, err := opts.String("target", "")
	if err != nil {
		return "", "", err
	}
	if target != "" && !g.HasVertex(target) {
		return "", "", fmt.Errorf("%w: target %q", core.ErrVertexNotFound, target)
	}

	return source, target, nil
}

// singleSource holds what both single-source solvers share.
type singleSource struct {
	dist   map[string]float64
	prev   map[string]string
	pathTo func(string) ([]string, error)
}

// writeSingleSource records distances, predecessors and the optional
// source→target path. isInPath is written on every vertex and edge.
func writeSingleSource(g *core.Graph, rs *algorithm.ResultSet, source, target string, s singleSource) {
	for v, d := range s.dist {
		rs.Vertex(v)["distance"] = d
		if p, ok := s.prev[v]; ok {
			rs.Vertex(v)["predecessor"] = p
		}
	}
	for _, v := range g.Vertices() {
		rs.Vertex(v)["isInPath"] = false
	}
	for _, e := range g.Edges() {
		rs.Edge(e.ID)["isInPath"] = false
	}
	rs.Graph["source"] = source
	if target == "" {
		return
	}
	rs.Graph["target"] = target
	p, err := s.pathTo(target)
	if err != nil {
		rs.Graph["reachable"] = false
		return
	}
	rs.Graph["reachable"] = true
	rs.Graph["path"] = p
	rs.Graph["pathLength"] = s.dist[target]
	for i, v := range p {
		rs.Vertex(v)["isInPath"] = true
		if i == 0 {
			continue
		}
		if e, ok := g.EdgeBetween(p[i-1], v); ok {
			rs.Edge(e.ID)["isInPath"] = true
		}
	}
}

func dijkstraAdapter() *adapter {
	return &adapter{
		id:     id("dijkstra"),
		desc:   "Single-source shortest paths on non-negative weights. Options: source (required), target, maxDistance.",
		styles: pathStyles("dijkstra"),
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			source, target, err := endpoints(g, opts)
			if err != nil {
				return err
			}
			dopts := []dijkstra.Option{
				dijkstra.Source(source),
				dijkstra.WithContext(ctx),
				dijkstra.WithStepHook(hook(ctx)),
			}
			if opts.Has("maxDistance") {
				m, err := opts.Float("maxDistance", 0)
				if err != nil {
					return err
				}
				dopts = append(dopts, dijkstra.WithMaxDistance(m))
			}
			res, err := dijkstra.Dijkstra(g, dopts...)
			if err != nil {
				return err
			}
			writeSingleSource(g, rs, source, target, singleSource{dist: res.Dist, prev: res.Prev, pathTo: res.PathTo})

			return nil
		},
	}
}

func bellmanFordAdapter() *adapter {
	return &adapter{
		id:     id("bellman-ford"),
		desc:   "Single-source shortest paths allowing negative weights; reachable negative cycles fail. Options: source (required), target.",
		styles: pathStyles("bellman-ford"),
		run: func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error {
			source, target, err := endpoints(g, opts)
			if err != nil {
				return err
			}
			res, err := bellmanford.BellmanFord(g,
				bellmanford.Source(source),
				bellmanford.WithContext(ctx),
				bellmanford.WithStepHook(hook(ctx)),
			)
			if err != nil {
				return err
			}
			writeSingleSource(g, rs, source, target, singleSource{dist: res.Dist, prev: res.Prev, pathTo: res.PathTo})
			rs.Graph["rounds"] = res.Rounds

			return nil
		},
	}
}

func floydWarshallAdapter() *adapter {
	return &adapter{
		id:   id("floyd-warshall"),
		desc: "All-pairs shortest paths with eccentricity, radius, diameter, center and periphery.",
		styles: func() []style.Descriptor {
			return []style.Descriptor{flag("floyd-warshall", "isCenter", style.TargetNode, NodeColor, highlight, muted)}
		},
		run: func(ctx context.Context, g *core.Graph, _ algorithm.Options, rs *algorithm.ResultSet) error {
			res, err := floydwarshall.FloydWarshall(g,
				floydwarshall.WithContext(ctx),
				floydwarshall.WithStepHook(hook(ctx)),
			)
			if err != nil {
				return err
			}
			center := toSet(res.Center)
			periphery := toSet(res.Periphery)
			for _, v := range res.IDs {
				rs.Vertex(v)["eccentricity"] = res.Eccentricity[v]
				rs.Vertex(v)["isCenter"] = center[v]
				rs.Vertex(v)["isPeriphery"] = periphery[v]
			}
			rs.Graph["radius"] = res.Radius
			rs.Graph["diameter"] = res.Diameter
			rs.Graph["connected"] = res.Connected

			return nil
		},
	}
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}
