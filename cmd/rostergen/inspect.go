package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/rostergen/internal/pipeline"
	"github.com/ajitpratap0/rostergen/pkg/compression"
	"github.com/ajitpratap0/rostergen/pkg/config"
	"github.com/ajitpratap0/rostergen/pkg/destinations"
	"github.com/ajitpratap0/rostergen/pkg/logger"
	"github.com/ajitpratap0/rostergen/pkg/sources"
)

func newInspectCmd() *cobra.Command {
	var (
		delimiter    string
		format       string
		algorithm    string
		reportFormat string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Check a roster file and print its report",
		Long: `Read a roster written by generate, check its header against the
schema and print the same summary. Format and compression are taken from
the file extension unless given.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sources.Options{Format: destinations.Format(format)}
			if delimiter != "" {
				out := config.OutputConfig{Delimiter: delimiter}
				r, err := out.DelimiterRune()
				if err != nil {
					return err
				}
				opts.Delimiter = r
			}
			if algorithm != "" {
				alg, err := compression.Parse(algorithm)
				if err != nil {
					return withCode(exitUsage, err)
				}
				opts.Compression = alg
			}
			switch reportFormat {
			case "text", "json":
			default:
				return withCode(exitUsage, fmt.Errorf("unsupported report format: %s", reportFormat))
			}

			log, err := logger.New(logger.Config{Level: logLevel, Output: cmd.ErrOrStderr()})
			if err != nil {
				return withCode(exitUsage, err)
			}
			defer func() { _ = log.Sync() }()

			ctx := logger.ContextWithCommand(cmd.Context(), "inspect")
			_, err = pipeline.Inspect(ctx, args[0], opts, reportFormat, cmd.OutOrStdout(), logger.WithContext(ctx, log))
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&delimiter, "delimiter", "", "CSV field delimiter (default \",\")")
	f.StringVar(&format, "format", "", "Input format (csv, jsonl, xlsx); inferred when empty")
	f.StringVar(&algorithm, "compression", "", "Input compression; inferred when empty")
	f.StringVar(&reportFormat, "report-format", "text", "Report format (text, json)")
	f.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	return cmd
}
