// Package graphty is an in-memory graph analysis toolkit: build or load a
// graph, run algorithms against it, and turn their per-vertex and per-edge
// results into visual styles.
//
// 🚀 What is graphty?
//
//	A thread-safe graph model plus a catalogue of classic algorithms:
//		• Core primitives: vertices, edges, weights, namespaced results
//		• Traversals: BFS, DFS, topological sort
//		• Shortest paths: Dijkstra, Bellman–Ford, Floyd–Warshall
//		• Spanning trees: Prim, Kruskal
//		• Centrality: degree, betweenness, closeness, eigenvector, PageRank, Katz, HITS
//		• Communities: Louvain, Leiden, Girvan–Newman, label propagation
//		• Structure: connected and strongly connected components
//		• Flow: Ford–Fulkerson, Edmonds–Karp, Dinic, minimum cut, bipartite matching
//
// ✨ How the pieces fit
//
// Every algorithm is registered under an ID such as "graphty:pagerank" and
// runs through algorithm.Runner, which writes its results into the graph
// under the namespace "graphty.pagerank". Algorithms also suggest styles:
// descriptors that map result paths like "graphty.pagerank.rank" to outputs
// such as node size or colour. The style package composes and evaluates them.
//
//	core/           Graph, Vertex, Edge and result storage
//	algorithm/      Algorithm contract, Registry, Runner, Options
//	algorithms/     the built-in adapters and their suggested styles
//	style/          descriptors, mappings (scales, ramps, CEL) and evaluation
//	builder/        deterministic generators: path, cycle, grid, random, …
//	ingest/         YAML/JSON graph documents
//	cmd/graphty/    command line front end
//
// Quick start:
//
//	g := core.NewGraph(core.WithWeighted())
//	_, _ = g.AddEdge("A", "B", core.WithWeight(1))
//	_, _ = g.AddEdge("B", "C", core.WithWeight(2))
//
//	reg := algorithm.NewRegistry()
//	_ = algorithms.RegisterBuiltins(reg)
//	r := algorithm.NewRunner(g, algorithm.WithRegistry(reg))
//	_, _ = r.Run(ctx, "graphty:degree", nil)
//	vals, _ := r.ApplySuggestedStyles("graphty:degree")
//
//	go get github.com/katalvlaran/graphty
package graphty
