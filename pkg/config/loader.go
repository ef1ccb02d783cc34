package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// FlagKeys maps command-line flag names to configuration keys. Flags that
// are present in a FlagSet passed to Load override the file and defaults.
var FlagKeys = map[string]string{
	"count":             "generator.employees",
	"seed":              "generator.seed",
	"output":            "output.path",
	"format":            "output.format",
	"delimiter":         "output.delimiter",
	"bom":               "output.bom",
	"compression":       "output.compression",
	"compression-level": "output.compression_level",
	"log-level":         "logging.level",
	"log-encoding":      "logging.encoding",
	"trace":             "observability.enable_tracing",
	"report-format":     "report.format",
}

// negatedFlags are boolean flags that set a key to false when given.
var negatedFlags = map[string]string{
	"no-overwrite": "output.overwrite",
	"no-report":    "report.enabled",
	"no-metrics":   "observability.enable_metrics",
}

// Load builds a configuration from defaults, then the file at path (if path
// is not empty), then the changed flags in flags (if not nil). Environment
// variables are never read. The result is validated.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, rerrors.Wrap(err, rerrors.ErrorTypeConfig, "failed to read config file").
				WithDetail("path", path)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, rerrors.Wrap(err, rerrors.ErrorTypeInternal, "failed to bind flag").
						WithDetail("flag", name)
				}
			}
		}
		for name, key := range negatedFlags {
			if flags.Changed(name) {
				if on, err := flags.GetBool(name); err == nil && on {
					v.Set(key, false)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.UnmarshalExact(cfg); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrorTypeConfig, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to filePath as YAML.
func Save(filePath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil { //nolint:gosec
		return rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to write config file").
			WithDetail("path", filePath)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("generator.employees", d.Generator.Employees)
	v.SetDefault("generator.seed", d.Generator.Seed)
	v.SetDefault("generator.max_id_attempts", d.Generator.MaxIDAttempts)
	v.SetDefault("generator.manager_pool_size", d.Generator.ManagerPoolSize)

	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.delimiter", d.Output.Delimiter)
	v.SetDefault("output.crlf", d.Output.CRLF)
	v.SetDefault("output.bom", d.Output.BOM)
	v.SetDefault("output.compression", d.Output.Compression)
	v.SetDefault("output.compression_level", d.Output.CompressionLevel)
	v.SetDefault("output.overwrite", d.Output.Overwrite)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.encoding", d.Logging.Encoding)
	v.SetDefault("logging.development", d.Logging.Development)

	v.SetDefault("observability.enable_metrics", d.Observability.EnableMetrics)
	v.SetDefault("observability.enable_tracing", d.Observability.EnableTracing)

	v.SetDefault("report.enabled", d.Report.Enabled)
	v.SetDefault("report.format", d.Report.Format)
}
