// Package rostergen generates deterministic mock HR rosters for a commercial
// bank. Each employee record carries the usual HR attributes plus a 15-level
// SNODE organizational code whose depth varies between 12 and 15 levels.
//
// The same seed and employee count always produce byte-identical output, so a
// roster can be regenerated instead of stored.
//
// # Quick Start
//
// Generate the default 1000-employee CSV:
//
//	rostergen generate
//
// Generate 5000 employees as gzip-compressed JSON Lines with another seed:
//
//	rostergen generate -n 5000 --seed 7 --format jsonl --compression gzip -o roster.jsonl.gz
//
// Summarize an existing file:
//
//	rostergen inspect roster.jsonl.gz
//
// From Go, build a configuration and run the pipeline:
//
//	cfg := config.Default()
//	cfg.Generator.Employees = 500
//	cfg.Output.Path = "roster.csv"
//
//	p, err := pipeline.New(cfg, pipeline.WithLogger(logger.Get()))
//	if err != nil {
//	    return err
//	}
//	res, err := p.Run(ctx)
//
// # Key Packages
//
//	pkg/refdata      - Static reference tables: org tree, geography, names, grades
//	pkg/hierarchy    - Org path flattening, deep SNODE labels and assembly
//	pkg/sampler      - Seeded record sampling and employee ID allocation
//	pkg/models       - Employee record and the output column schema
//	pkg/destinations - Atomic CSV, JSON Lines and XLSX writers
//	pkg/sources      - Reading a roster back for inspection
//	pkg/report       - Distribution statistics and the console summary
//	pkg/compression  - gzip, zstd, s2, snappy and lz4 streams
//	pkg/config       - YAML configuration, defaults and validation
//	pkg/rostererrors - Typed errors used for exit codes
//	pkg/logger       - Structured logging
//	pkg/metrics      - Run metrics on a private registry
//	pkg/observability - Stage tracing
//
// # Configuration
//
// Settings are resolved as flags, then the config file, then defaults.
// Environment variables are never read. Write a starting file with:
//
//	rostergen config init rostergen.yaml
//
// # Exit Codes
//
//	0  success
//	1  unexpected failure
//	2  invalid configuration or input values
//	3  command-line usage error
//	4  file error
//	5  invalid reference data or exhausted ID space
package rostergen
