// Package algorithms adapts the graphty algorithm packages to the
// algorithm.Algorithm contract under the "graphty" namespace.
//
// RegisterBuiltins adds every adapter to a registry:
//
//	reg := algorithm.NewRegistry()
//	if err := algorithms.RegisterBuiltins(reg); err != nil { … }
//	rs, err := algorithm.NewRunner(g, algorithm.WithRegistry(reg)).
//	    Run(ctx, "graphty:degree", nil)
//
// Each adapter writes fixed fields under "graphty.<name>":
//
//	degree            vertex degree inDegree outDegree degreePct inDegreePct outDegreePct
//	                  graph  maxDegree maxInDegree maxOutDegree
//	bfs               vertex level visitOrder; graph maxLevel visitedCount
//	dfs               vertex discoveryTime finishTime
//	topological-sort  vertex topoOrder
//	dijkstra          vertex distance isInPath predecessor; edge isInPath
//	bellman-ford      graph  source [target path pathLength reachable]
//	floyd-warshall    vertex eccentricity isCenter isPeriphery; graph radius diameter connected
//	betweenness       vertex score scorePct; edge score
//	closeness         vertex score
//	eigenvector, katz vertex score; graph converged iterations
//	pagerank          vertex rank; graph converged iterations maxRank
//	hits              vertex hub authority; graph converged iterations
//	louvain, leiden,  vertex communityId; graph modularity communityCount
//	girvan-newman, label-propagation
//	mst               edge inMST; graph totalWeight
//	components, scc   vertex componentId; graph componentCount
//	max-flow          edge flow; graph maxFlow
//	min-cut           vertex partition; edge inCut; graph cutValue
//	matching          vertex matchedWith; edge matched; graph matchingSize
//
// Options are read from algorithm.Options with the keys documented on each
// adapter's Description.
package algorithms
