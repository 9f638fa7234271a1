// Package floydwarshall computes all-pairs shortest paths by dynamic
// programming over intermediate vertices, and derives eccentricity, radius,
// diameter, center and periphery from the distance matrix.
//
// Contract:
//   - Vertices are indexed in sorted ID order; +Inf means “no path”.
//   - Loop order is fixed (k → i → j) and only strict improvements are
//     applied, so results are deterministic.
//   - Undirected edges are usable both ways.
//
// Complexity: Time O(V³), Space O(V²).
package floydwarshall

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/graphty/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = fmt.Errorf("floydwarshall: graph is nil: %w", core.ErrStructural)

	// ErrUnknownVertex indicates a query for a vertex absent from the result.
	ErrUnknownVertex = fmt.Errorf("floydwarshall: vertex %w", core.ErrNotFound)

	// ErrNoPath indicates the destination is unreachable from the source.
	ErrNoPath = fmt.Errorf("floydwarshall: no path: %w", core.ErrNotFound)
)

// CycleError reports a negative cycle passing through Vertex.
type CycleError struct {
	Vertex string
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("floydwarshall: negative cycle through %q", e.Vertex)
}

// Unwrap lets errors.Is(err, core.ErrCycle) match.
func (e *CycleError) Unwrap() error { return core.ErrCycle }

// Options configures FloydWarshall.
type Options struct {
	Ctx      context.Context
	StepHook core.StepHook
}

// Option is a functional option for FloydWarshall.
type Option func(*Options)

// WithContext sets the cancellation context, checked once per intermediate vertex.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepHook installs a host hook called once per intermediate vertex.
func WithStepHook(h core.StepHook) Option {
	return func(o *Options) { o.StepHook = h }
}

// Result is the all-pairs distance matrix with next-hop links.
//
// Eccentricity of v is the largest finite distance from v to any vertex it
// reaches (0 for a vertex that reaches nothing). Radius and Diameter are the
// minimum and maximum eccentricity. Connected reports whether every ordered
// pair is mutually reachable; on disconnected graphs eccentricities cover the
// reachable part only.
type Result struct {
	IDs  []string
	Dist [][]float64

	Eccentricity map[string]float64
	Radius       float64
	Diameter     float64
	Center       []string
	Periphery    []string
	Connected    bool

	index map[string]int
	next  [][]int
}

// FloydWarshall runs the all-pairs computation over g.
//
// Errors: ErrNilGraph, *CycleError (errors.Is(err, core.ErrCycle)),
// core.ErrCancelled.
func FloydWarshall(g *core.Graph, opts ...Option) (*Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	ix := g.Snapshot()
	n := ix.N()
	dist, next := initMatrices(ix)
	steps := core.NewSteps(cfg.Ctx, "floyd-warshall", cfg.StepHook)

	var (
		k, i, j    int
		ik, kj, ij float64
	)
	for k = 0; k < n; k++ {
		if err := steps.Next(); err != nil {
			return nil, err
		}
		for i = 0; i < n; i++ {
			ik = dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj = dist[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = dist[i][j]
				if ik+kj < ij {
					dist[i][j] = ik + kj
					next[i][j] = next[i][k]
				}
			}
		}
	}
	for i = 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, &CycleError{Vertex: ix.IDs[i]}
		}
	}

	res := &Result{IDs: ix.IDs, Dist: dist, index: ix.Index, next: next}
	res.derive()

	return res, nil
}

// initMatrices seeds distances from direct arcs: 0 on the diagonal (or a
// negative self-loop weight), arc weight where an arc exists, +Inf elsewhere.
func initMatrices(ix *core.Indexed) ([][]float64, [][]int) {
	n := ix.N()
	dist := make([][]float64, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			dist[i][j] = math.Inf(1)
			next[i][j] = -1
		}
		dist[i][i] = 0
		next[i][i] = i
	}
	for u := 0; u < n; u++ {
		for _, a := range ix.Out[u] {
			if a.Weight < dist[u][a.To] {
				dist[u][a.To] = a.Weight
				next[u][a.To] = a.To
			}
		}
	}

	return dist, next
}

// derive fills eccentricity, radius, diameter, center, periphery and the
// connected flag.
func (r *Result) derive() {
	n := len(r.IDs)
	r.Eccentricity = make(map[string]float64, n)
	r.Connected = true
	ecc := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := r.Dist[i][j]
			if math.IsInf(d, 1) {
				r.Connected = false
				continue
			}
			if d > ecc[i] {
				ecc[i] = d
			}
		}
		r.Eccentricity[r.IDs[i]] = ecc[i]
	}
	if n == 0 {
		return
	}
	r.Radius, r.Diameter = ecc[0], ecc[0]
	for _, e := range ecc[1:] {
		r.Radius = math.Min(r.Radius, e)
		r.Diameter = math.Max(r.Diameter, e)
	}
	for i, e := range ecc {
		if e == r.Radius {
			r.Center = append(r.Center, r.IDs[i])
		}
		if e == r.Diameter {
			r.Periphery = append(r.Periphery, r.IDs[i])
		}
	}
}

// Distance returns the shortest distance u→v and whether v is reachable.
func (r *Result) Distance(u, v string) (float64, bool) {
	i, ok1 := r.index[u]
	j, ok2 := r.index[v]
	if !ok1 || !ok2 || math.IsInf(r.Dist[i][j], 1) {
		return math.Inf(1), false
	}

	return r.Dist[i][j], true
}

// Path reconstructs one shortest path u→v by following next-hop links.
func (r *Result) Path(u, v string) ([]string, error) {
	i, ok := r.index[u]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, u)
	}
	j, ok := r.index[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}
	if r.next[i][j] < 0 {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, u, v)
	}
	path := []string{u}
	for i != j {
		i = r.next[i][j]
		path = append(path, r.IDs[i])
	}

	return path, nil
}
