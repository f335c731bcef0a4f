package visualizer

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// tracerName identifies spans emitted by this package.
const tracerName = "gridpath.visualizer"

// Visualizer runs searches and reduces board actions. The zero value is not
// usable; construct with New.
type Visualizer struct {
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithLogger sets the logger for run records and engine diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(v *Visualizer) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithMetrics enables prometheus recording.
func WithMetrics(m *Metrics) Option {
	return func(v *Visualizer) { v.metrics = m }
}

// WithTracerProvider takes spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(v *Visualizer) {
		if tp != nil {
			v.tracer = tp.Tracer(tracerName)
		}
	}
}

// New returns a Visualizer using slog.Default(), the global tracer provider
// and no metrics unless overridden.
func New(opts ...Option) *Visualizer {
	v := &Visualizer{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Visualize runs alg on g and records the run. g is read only.
func (v *Visualizer) Visualize(ctx context.Context, alg Algorithm, g *gridgraph.Grid) (*Result, error) {
	ctx, span := v.tracer.Start(ctx, "Visualizer.Visualize",
		trace.WithAttributes(attribute.String("search.algorithm", alg.String())),
	)
	defer span.End()

	res, err := Search(alg, g, search.WithLogger(v.logger))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		v.metrics.observeError(alg)
		v.logger.ErrorContext(ctx, "visualizer: search rejected",
			slog.String("algorithm", alg.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("search.run_id", res.RunID),
		attribute.Int("search.visited", len(res.Visited)),
		attribute.Int("search.cost", res.Cost),
		attribute.Bool("search.has_path", res.HasPath()),
	)
	v.metrics.observe(res)
	v.logger.InfoContext(ctx, "visualizer: search finished",
		slog.String("run_id", res.RunID),
		slog.String("algorithm", alg.String()),
		slog.Int("visited", len(res.Visited)),
		slog.Int("cost", res.Cost),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// Compare runs every registered algorithm on g, each on its own state
// table, and returns the results in Algorithms() order.
func (v *Visualizer) Compare(ctx context.Context, g *gridgraph.Grid) ([]*Result, error) {
	algs := Algorithms()
	out := make([]*Result, 0, len(algs))
	for _, alg := range algs {
		res, err := v.Visualize(ctx, alg, g)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
