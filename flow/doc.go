// Package flow implements maximum-flow and minimum-cut algorithms on
// *core.Graph, treating edge weights as capacities.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed (integral networks).
//
//   - Edmonds–Karp (the default method)
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E), O(E · √V) on unit-capacity networks.
//
// MaxFlow dispatches by method name; MinCut runs MaxFlow and reads the
// source side off the final residual network.
//
// # Graph Support
//
//   - Directed graphs: each edge u→v contributes capacity u→v; antiparallel
//     edges keep separate capacities and are merged in the residual map.
//   - Undirected graphs: each edge carries capacity in both directions and its
//     flow is reported signed relative to From→To.
//   - Unweighted graphs: every edge has capacity 1.
//   - Self-loops are ignored.
//
// # API
//
//	func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func FordFulkerson(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func MaxFlow(g *core.Graph, source, sink, method string, opts FlowOptions) (*Result, error)
//	func MinCut(g *core.Graph, source, sink, method string, opts FlowOptions) (*Cut, error)
//
// Use DefaultOptions() to obtain defaults:
//
//	opts := flow.DefaultOptions()
//	// opts.Ctx = context.Background()
//	// opts.Epsilon = 1e-9
//	// opts.Verbose = false
//	// opts.LevelRebuildInterval = 0
//
// Every augmenting path is one step: opts.Ctx and opts.StepHook are checked
// before each search. With Verbose set, each augmentation is logged at debug
// level through the logger carried by opts.Ctx (see internal/ctxlog).
//
// # Errors
//
//	ErrGraphNil       - graph is nil (core.ErrStructural).
//	ErrSourceNotFound - the source vertex is missing (core.ErrNotFound).
//	ErrSinkNotFound   - the sink vertex is missing (core.ErrNotFound).
//	ErrSameEndpoints  - source == sink (core.ErrStructural).
//	ErrUnknownMethod  - MaxFlow/MinCut got an unknown method (core.ErrNotFound).
//	EdgeError         - a negative capacity beyond Epsilon (core.ErrNumeric).
//	core.ErrCancelled - opts.Ctx was cancelled or the step hook refused.
package flow
