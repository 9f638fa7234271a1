// Package community partitions a graph into densely connected groups.
//
// Detectors:
//
//   - Louvain: greedy modularity optimization with multilevel aggregation.
//   - Leiden: Louvain plus a refinement phase; communities are always connected.
//   - GirvanNewman: divisive, removes the highest-betweenness edge each step.
//   - LabelPropagation: neighbours vote with edge weight until labels settle.
//
// Modularity scores any partition:
//
//	Q = 1/2m · Σ_ij [ A_ij − γ·k_i·k_j / 2m ] · δ(c_i, c_j)
//
// Every detector sees the graph as undirected: a directed pair u→v, v→u
// becomes one edge with summed weight. Negative weights are rejected.
//
// Determinism: vertices are visited in sorted ID order (or a seeded shuffle),
// ties keep the current community, and communities are numbered 0..k−1 by
// their smallest vertex ID. The same graph and options always give the same
// partition.
package community
