// Package pipeline runs one roster generation: sample the records, write the
// output file, then summarize it. Each stage is a span and the run is logged
// under a fresh run ID.
package pipeline

import (
	"context"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/ajitpratap0/rostergen/pkg/compression"
	"github.com/ajitpratap0/rostergen/pkg/config"
	"github.com/ajitpratap0/rostergen/pkg/destinations"
	"github.com/ajitpratap0/rostergen/pkg/logger"
	"github.com/ajitpratap0/rostergen/pkg/metrics"
	"github.com/ajitpratap0/rostergen/pkg/models"
	"github.com/ajitpratap0/rostergen/pkg/observability"
	"github.com/ajitpratap0/rostergen/pkg/refdata"
	"github.com/ajitpratap0/rostergen/pkg/report"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
	"github.com/ajitpratap0/rostergen/pkg/sampler"
)

// Result describes a completed run.
type Result struct {
	RunID    string
	Path     string
	Records  int
	Bytes    int64
	Stats    *report.Stats
	Duration time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the base logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithTracer sets the tracer for stage spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

// WithCatalog replaces the built-in reference catalog.
func WithCatalog(c *refdata.Catalog) Option {
	return func(p *Pipeline) { p.catalog = c }
}

// WithReportOutput sets where the summary is printed. Defaults to stdout.
func WithReportOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.out = w }
}

// WithMetrics sets the collectors. A fresh set is created when omitted.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// Pipeline wires the sampler, the destination and the reporter.
type Pipeline struct {
	config  *config.Config
	catalog *refdata.Catalog
	logger  *zap.Logger
	tracer  trace.Tracer
	metrics *metrics.Metrics
	out     io.Writer
}

// New creates a pipeline for cfg. cfg is validated here.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, rerrors.New(rerrors.ErrorTypeConfig, "configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{
		config:  cfg,
		catalog: refdata.Default(),
		logger:  zap.NewNop(),
		tracer:  noop.NewTracerProvider().Tracer("rostergen"),
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics == nil {
		p.metrics = metrics.New()
	}
	return p, nil
}

// Metrics returns the collectors used by the pipeline.
func (p *Pipeline) Metrics() *metrics.Metrics {
	return p.metrics
}

// Run generates, writes and reports one roster.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logger.ContextWithRunID(ctx, runID)
	log := logger.WithContext(ctx, p.logger).With(zap.String("component", "pipeline"))

	gen := p.config.Generator
	out := p.config.Output
	log.Info("starting run",
		zap.Int("employees", gen.Employees),
		zap.Uint64("seed", gen.Seed),
		zap.String("output", out.Path),
		zap.String("format", out.Format),
		zap.String("compression", out.Compression))

	var records []*models.EmployeeRecord
	err := observability.Trace(ctx, p.tracer, "generate", func(ctx context.Context) error {
		s, err := sampler.New(sampler.Config{
			Seed:            gen.Seed,
			MaxIDAttempts:   gen.MaxIDAttempts,
			ManagerPoolSize: gen.ManagerPoolSize,
		}, p.catalog,
			sampler.WithLogger(log.With(zap.String("component", "sampler"))),
			sampler.WithObserver(p.metrics))
		if err != nil {
			return err
		}
		records, err = s.Generate(ctx, gen.Employees)
		return err
	}, attribute.Int("employees", gen.Employees), attribute.String("seed", strconv.FormatUint(gen.Seed, 10)))
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return nil, err
	}
	log.Debug("records generated", zap.Int("records", len(records)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts, err := p.destinationOptions()
	if err != nil {
		return nil, err
	}
	var written *destinations.Result
	err = observability.Trace(ctx, p.tracer, "write", func(ctx context.Context) error {
		writeStart := time.Now()
		res, werr := destinations.Write(ctx, opts, records)
		if werr != nil {
			return werr
		}
		written = res
		p.metrics.ObserveWrite(time.Since(writeStart), written.Bytes)
		observability.AddAttributes(ctx, attribute.Int64("bytes", written.Bytes))
		return nil
	}, attribute.String("path", opts.Path), attribute.String("format", string(opts.Format)))
	if err != nil {
		log.Error("write failed", zap.Error(err))
		return nil, err
	}
	log.Info("roster written",
		zap.String("path", written.Path),
		zap.Int("records", written.Records),
		zap.Int64("bytes", written.Bytes))

	var stats *report.Stats
	err = observability.Trace(ctx, p.tracer, "report", func(context.Context) error {
		stats = report.Compute(records)
		if !p.config.Report.Enabled {
			return nil
		}
		return Print(p.out, p.config.Report.Format, written.Path, stats)
	})
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to print report")
	}

	if p.config.Observability.EnableMetrics {
		p.logMetrics(log)
	}

	res := &Result{
		RunID:    runID,
		Path:     written.Path,
		Records:  written.Records,
		Bytes:    written.Bytes,
		Stats:    stats,
		Duration: time.Since(start),
	}
	log.Info("run complete", zap.Duration("duration", res.Duration))
	return res, nil
}

// Print writes stats in the given report format.
func Print(w io.Writer, format, path string, stats *report.Stats) error {
	if format == "json" {
		return report.PrintJSON(w, path, stats)
	}
	return report.PrintText(w, path, stats)
}

func (p *Pipeline) destinationOptions() (destinations.Options, error) {
	out := p.config.Output
	alg, err := compression.Parse(out.Compression)
	if err != nil {
		return destinations.Options{}, rerrors.Wrap(err, rerrors.ErrorTypeConfig, "invalid compression")
	}
	level, err := compression.ParseLevel(out.CompressionLevel)
	if err != nil {
		return destinations.Options{}, rerrors.Wrap(err, rerrors.ErrorTypeConfig, "invalid compression level")
	}
	opts := destinations.Options{
		Path:        out.Path,
		Format:      destinations.Format(out.Format),
		CRLF:        out.CRLF,
		BOM:         out.BOM,
		Compression: alg,
		Level:       level,
		Overwrite:   out.Overwrite,
	}
	if opts.Format == destinations.CSV {
		if opts.Delimiter, err = out.DelimiterRune(); err != nil {
			return destinations.Options{}, err
		}
	}
	return opts, nil
}

func (p *Pipeline) logMetrics(log *zap.Logger) {
	samples, err := p.metrics.Snapshot()
	if err != nil {
		log.Warn("failed to gather metrics", zap.Error(err))
		return
	}
	fields := make([]zap.Field, 0, len(samples))
	for _, s := range samples {
		fields = append(fields, zap.Float64(s.Name+s.Labels, s.Value))
	}
	log.Info("metrics", fields...)
}
