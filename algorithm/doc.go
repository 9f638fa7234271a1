// Package algorithm defines the contract every graphty algorithm implements,
// the registry that maps identifiers to implementations, and the Runner
// that executes them against a graph.
//
// # Identifiers
//
// An algorithm ID has the form "<namespace>:<name>", e.g. "graphty:degree".
// Its results are stored on the graph under the dotted namespace
// "graphty.degree", so a field is addressed as "graphty.degree.degreePct".
//
// # Contract
//
//	type Algorithm interface {
//	    ID() string
//	    Run(ctx context.Context, g *core.Graph, opts Options) (*ResultSet, error)
//	}
//
// Run must not change the topology of g. It may read results written by
// earlier runs (composite algorithms) and returns a ResultSet that the
// Runner writes back, replacing whatever the namespace held before.
// Algorithms that know how their output should look also implement
// StyleSuggester.
//
// # Registry
//
// Registry is an explicit string → Factory map. Register rejects malformed
// and duplicate IDs; New returns ErrUnknownAlgorithm (core.ErrNotFound) for
// an unregistered ID. Default is the process-wide registry used by the
// package-level Register and New.
//
// # Runner
//
// Runner binds a registry, a graph, a logger and a tracer:
//
//	r := algorithm.NewRunner(g, algorithm.WithParallelism(4))
//	rs, err := r.Run(ctx, "graphty:pagerank", algorithm.Options{"damping": 0.9})
//	report := r.RunTemplate(ctx, []algorithm.Invocation{{Algorithm: "graphty:degree"}})
//	vals, err := r.ApplySuggestedStyles("graphty:degree", "graphty:pagerank")
//
// Every run gets a UUID, an OpenTelemetry span and slog records carrying
// run_id, algorithm and duration. The logger comes from ctx when one was
// attached with ctxlog.WithLogger.
package algorithm
