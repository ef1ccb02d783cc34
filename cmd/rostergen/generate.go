package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/rostergen/internal/pipeline"
	"github.com/ajitpratap0/rostergen/pkg/config"
	"github.com/ajitpratap0/rostergen/pkg/logger"
	"github.com/ajitpratap0/rostergen/pkg/observability"
)

func newGenerateCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a roster file",
		Long: `Generate a roster of employees and write it to a single file.

Settings come from the flags, then the config file, then the built-in
defaults. Environment variables are not read.

Example:
  rostergen generate -n 5000 --seed 7 -o roster.csv.gz --compression gzip`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "Path to a YAML config file")
	f.IntP("count", "n", d.Generator.Employees, "Number of employees to generate")
	f.Uint64("seed", d.Generator.Seed, "Seed for the random number generator")
	f.StringP("output", "o", d.Output.Path, "Output file path")
	f.String("format", d.Output.Format, "Output format (csv, jsonl, xlsx)")
	f.String("delimiter", d.Output.Delimiter, "CSV field delimiter")
	f.Bool("bom", d.Output.BOM, "Write a UTF-8 byte order mark before CSV output")
	f.String("compression", d.Output.Compression, "Output compression (none, gzip, zstd, s2, snappy, lz4)")
	f.String("compression-level", d.Output.CompressionLevel, "Compression level (fastest, default, better, best)")
	f.Bool("no-overwrite", false, "Fail if the output file already exists")
	f.String("report-format", d.Report.Format, "Report format (text, json)")
	f.Bool("no-report", false, "Do not print the report")
	f.Bool("no-metrics", false, "Do not log the metrics snapshot")
	f.String("log-level", d.Logging.Level, "Log level (debug, info, warn, error)")
	f.String("log-encoding", d.Logging.Encoding, "Log encoding (console, json)")
	f.Bool("trace", d.Observability.EnableTracing, "Export trace spans to stderr")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	if err := logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Encoding:    cfg.Logging.Encoding,
		Output:      cmd.ErrOrStderr(),
	}); err != nil {
		return withCode(exitValidation, err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	tracing, err := observability.NewTracing(observability.TracingConfig{
		Enabled:        cfg.Observability.EnableTracing,
		ServiceVersion: version,
		Output:         cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx); err != nil {
			log.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	ctx := logger.ContextWithCommand(cmd.Context(), "generate")
	p, err := pipeline.New(cfg,
		pipeline.WithLogger(log),
		pipeline.WithTracer(tracing.Tracer()),
		pipeline.WithReportOutput(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	_, err = p.Run(ctx)
	return err
}
