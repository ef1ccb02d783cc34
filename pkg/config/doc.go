// Package config loads, validates and saves the rostergen configuration.
//
// # Sources
//
// A configuration is assembled from three layers, highest first:
//
//  1. command-line flags that were explicitly set
//  2. a YAML (or JSON/TOML) config file given with --config
//  3. the built-in defaults from Default
//
// Environment variables are not consulted.
//
// # Usage
//
//	cfg, err := config.Load("rostergen.yaml", cmd.Flags())
//	if err != nil {
//		return err
//	}
//
// # File layout
//
//	generator:
//	  employees: 1000
//	  seed: 42
//	  max_id_attempts: 1000
//	  manager_pool_size: 100
//	output:
//	  path: commercial_bank_hr_data.csv
//	  format: csv
//	  delimiter: ","
//	  crlf: true
//	  bom: false
//	  compression: none
//	  compression_level: default
//	  overwrite: true
//	logging:
//	  level: info
//	  encoding: console
//	observability:
//	  enable_metrics: true
//	  enable_tracing: false
//	report:
//	  enabled: true
//	  format: text
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config
