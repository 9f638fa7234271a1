// SPDX-License-Identifier: MIT
// Package: graphty/builder
//
// doc.go - package overview.

// Package builder generates deterministic graph fixtures for tests, examples
// and the graphty CLI.
//
// A Constructor mutates a *core.Graph using a resolved builderConfig.
// BuildGraph creates the graph and applies constructors in order:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.Cycle(6),
//	)
//
// Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid and
// RandomSparse. Parse turns a short textual spec ("grid:3,4", "random:20,0.1")
// into a Constructor.
//
// Vertex IDs come from an IDFn (decimal by default; ExcelColumnIDFn and
// SymbolNumberIDFn are provided). Weights come from a WeightFn and are only
// observed on weighted graphs.
//
// Determinism: the same options, seed and constructor order always produce
// the same vertices, edge IDs and weights.
//
// Errors wrap the core kinds: parameter errors are core.ErrStructural,
// a missing random source is core.ErrStructural too.
package builder
