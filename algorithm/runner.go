package algorithm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/internal/ctxlog"
	"github.com/katalvlaran/graphty/style"
)

// TracerName is the instrumentation scope of Runner spans.
const TracerName = "github.com/katalvlaran/graphty/algorithm"

// Runner executes registered algorithms against one graph.
type Runner struct {
	graph       *core.Graph
	registry    *Registry
	logger      *slog.Logger
	tracer      trace.Tracer
	parallelism int
	hook        core.StepHook

	// applyMu serialises result write-back so concurrent runs of one
	// namespace replace each other whole.
	applyMu sync.Mutex
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRegistry selects the registry (default: Default).
func WithRegistry(reg *Registry) RunnerOption {
	return func(r *Runner) { r.registry = reg }
}

// WithLogger sets the fallback logger used when ctx carries none.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithTracerProvider sets where spans go (default: the global provider).
func WithTracerProvider(tp trace.TracerProvider) RunnerOption {
	return func(r *Runner) { r.tracer = tp.Tracer(TracerName) }
}

// WithParallelism bounds how many RunTemplate entries run at once.
// Values below 1 mean sequential.
func WithParallelism(n int) RunnerOption {
	return func(r *Runner) { r.parallelism = n }
}

// WithStepHook installs a hook forwarded to every run.
func WithStepHook(h core.StepHook) RunnerOption {
	return func(r *Runner) { r.hook = h }
}

// NewRunner returns a Runner over g.
func NewRunner(g *core.Graph, opts ...RunnerOption) *Runner {
	r := &Runner{
		graph:       g,
		registry:    Default,
		logger:      slog.Default(),
		tracer:      otel.Tracer(TracerName),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallelism < 1 {
		r.parallelism = 1
	}

	return r
}

// Graph returns the graph the runner writes to.
func (r *Runner) Graph() *core.Graph { return r.graph }

// Registry returns the registry the runner resolves IDs in.
func (r *Runner) Registry() *Registry { return r.registry }

// Run executes id with opts and writes its results onto the graph,
// replacing the previous contents of its namespace. A failed run writes
// nothing.
func (r *Runner) Run(ctx context.Context, id string, opts Options) (*ResultSet, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	alg, err := r.registry.New(id)
	if err != nil {
		return nil, err
	}
	if r.hook != nil && StepHookFromContext(ctx) == nil {
		ctx = ContextWithStepHook(ctx, r.hook)
	}

	ctx, span := r.tracer.Start(ctx, "algorithm.Run", trace.WithAttributes(
		attribute.String("graphty.algorithm", id),
		attribute.Int("graphty.vertices", r.graph.VertexCount()),
		attribute.Int("graphty.edges", r.graph.EdgeCount()),
	))
	defer span.End()

	logger := ctxlog.FromContextOr(ctx, r.logger).With(slog.String("algorithm", id))
	logger.Debug("running algorithm", slog.Int("options", len(opts)))

	start := time.Now()
	rs, err := alg.Run(ctx, r.graph, opts)
	elapsed := time.Since(start)
	if err == nil && rs == nil {
		err = fmt.Errorf("algorithm %s returned no results: %w", id, core.ErrStructural)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("algorithm failed", slog.Duration("duration", elapsed), slog.Any("error", err))

		return nil, fmt.Errorf("%s: %w", id, err)
	}

	rs.Algorithm = id
	rs.Namespace = Namespace(id)
	rs.Duration = elapsed
	span.SetAttributes(
		attribute.String("graphty.run_id", rs.RunID.String()),
		attribute.Int64("duration_ms", elapsed.Milliseconds()),
	)

	r.applyMu.Lock()
	err = rs.Apply(r.graph)
	r.applyMu.Unlock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("writing results failed", slog.String("run_id", rs.RunID.String()), slog.Any("error", err))

		return rs, fmt.Errorf("%s: %w", id, err)
	}

	logger.Info("algorithm finished",
		slog.String("run_id", rs.RunID.String()),
		slog.Duration("duration", elapsed),
		slog.Int("vertex_results", len(rs.Vertices)),
		slog.Int("edge_results", len(rs.Edges)),
	)

	return rs, nil
}

// Invocation is one entry of a run template.
type Invocation struct {
	Algorithm string  `yaml:"algorithm" json:"algorithm" mapstructure:"algorithm"`
	Options   Options `yaml:"options,omitempty" json:"options,omitempty" mapstructure:"options"`
}

// BatchEntry is the outcome of one Invocation.
type BatchEntry struct {
	Invocation
	Result *ResultSet
	Err    error
}

// BatchReport collects the outcome of RunTemplate in template order.
type BatchReport struct {
	Entries []BatchEntry
}

// Err joins every entry error, or returns nil when all succeeded.
func (b *BatchReport) Err() error {
	var errs []error
	for _, e := range b.Entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}

	return errors.Join(errs...)
}

// Succeeded counts entries without error.
func (b *BatchReport) Succeeded() int {
	n := 0
	for _, e := range b.Entries {
		if e.Err == nil {
			n++
		}
	}

	return n
}

// RunTemplate runs every invocation, each independently: one failure does
// not stop the others. With parallelism 1 entries run in order, so later
// entries can read results of earlier ones.
func (r *Runner) RunTemplate(ctx context.Context, template []Invocation) *BatchReport {
	report := &BatchReport{Entries: make([]BatchEntry, len(template))}

	var eg errgroup.Group
	eg.SetLimit(r.parallelism)
	for i, inv := range template {
		report.Entries[i].Invocation = inv
		eg.Go(func() error {
			rs, err := r.Run(ctx, inv.Algorithm, inv.Options)
			report.Entries[i].Result = rs
			report.Entries[i].Err = err

			return nil
		})
	}
	_ = eg.Wait()

	ctxlog.FromContextOr(ctx, r.logger).Debug("template finished",
		slog.Int("entries", len(template)),
		slog.Int("succeeded", report.Succeeded()),
	)

	return report
}

// SuggestedSources returns one style.Source per id that suggests styles,
// in the given order.
func (r *Runner) SuggestedSources(ids ...string) ([]style.Source, error) {
	var sources []style.Source
	for _, id := range ids {
		alg, err := r.registry.New(id)
		if err != nil {
			return nil, err
		}
		if s, ok := alg.(StyleSuggester); ok {
			sources = append(sources, style.Source{Name: id, Descriptors: s.SuggestedStyles()})
		}
	}

	return sources, nil
}

// SuggestedStyles composes the suggested styles of ids; later IDs win on
// conflicting outputs.
func (r *Runner) SuggestedStyles(ids ...string) ([]style.Layer, error) {
	sources, err := r.SuggestedSources(ids...)
	if err != nil {
		return nil, err
	}

	return style.Compose(sources...), nil
}

// ApplySuggestedStyles evaluates the composed styles of ids over the graph.
func (r *Runner) ApplySuggestedStyles(ids ...string) (*style.Values, error) {
	layers, err := r.SuggestedStyles(ids...)
	if err != nil {
		return nil, err
	}

	return style.Evaluate(r.graph, layers)
}
