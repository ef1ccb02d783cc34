package config

import (
	"errors"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// Defaults shared with the CLI flags.
const (
	DefaultEmployees       = 1000
	DefaultSeed            = 42
	DefaultMaxIDAttempts   = 1000
	DefaultManagerPoolSize = 100
	DefaultOutputPath      = "commercial_bank_hr_data.csv"
)

// Validate is the shared struct validator.
var Validate = validator.New()

// Config is the complete configuration of one run.
type Config struct {
	// Generator controls how many records are sampled and from which seed
	Generator GeneratorConfig `yaml:"generator" json:"generator" mapstructure:"generator"`

	// Output controls where and how the roster is written
	Output OutputConfig `yaml:"output" json:"output" mapstructure:"output"`

	// Logging controls the stderr logger
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`

	// Observability toggles the metrics snapshot and tracing
	Observability ObservabilityConfig `yaml:"observability" json:"observability" mapstructure:"observability"`

	// Report controls the console summary
	Report ReportConfig `yaml:"report" json:"report" mapstructure:"report"`
}

// GeneratorConfig contains the sampling settings.
type GeneratorConfig struct {
	// Employees is the number of records to generate
	Employees int `yaml:"employees" json:"employees" mapstructure:"employees" validate:"gte=0"`
	// Seed initializes the main random stream
	Seed uint64 `yaml:"seed" json:"seed" mapstructure:"seed"`
	// MaxIDAttempts bounds the resampling loop for one employee ID
	MaxIDAttempts int `yaml:"max_id_attempts" json:"max_id_attempts" mapstructure:"max_id_attempts" validate:"gte=1"`
	// ManagerPoolSize is the number of distinct manager names
	ManagerPoolSize int `yaml:"manager_pool_size" json:"manager_pool_size" mapstructure:"manager_pool_size" validate:"gte=1"`
}

// OutputConfig contains the writer settings.
type OutputConfig struct {
	// Path of the output file
	Path string `yaml:"path" json:"path" mapstructure:"path" validate:"required"`
	// Format is csv, jsonl or xlsx
	Format string `yaml:"format" json:"format" mapstructure:"format" validate:"oneof=csv jsonl xlsx"`
	// Delimiter is the CSV field separator, a single character
	Delimiter string `yaml:"delimiter" json:"delimiter" mapstructure:"delimiter"`
	// CRLF terminates CSV lines with \r\n instead of \n
	CRLF bool `yaml:"crlf" json:"crlf" mapstructure:"crlf"`
	// BOM prefixes CSV output with a UTF-8 byte order mark
	BOM bool `yaml:"bom" json:"bom" mapstructure:"bom"`
	// Compression is none, gzip, zstd, s2, snappy or lz4
	Compression string `yaml:"compression" json:"compression" mapstructure:"compression" validate:"oneof=none gzip zstd s2 snappy lz4"`
	// CompressionLevel is fastest, default, better or best
	CompressionLevel string `yaml:"compression_level" json:"compression_level" mapstructure:"compression_level" validate:"oneof=fastest default better best"`
	// Overwrite allows replacing an existing file
	Overwrite bool `yaml:"overwrite" json:"overwrite" mapstructure:"overwrite"`
}

// LoggingConfig contains the logger settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level" json:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	// Encoding is console or json
	Encoding string `yaml:"encoding" json:"encoding" mapstructure:"encoding" validate:"oneof=console json"`
	// Development enables caller-heavy development logging
	Development bool `yaml:"development" json:"development" mapstructure:"development"`
}

// ObservabilityConfig contains the metrics and tracing toggles.
type ObservabilityConfig struct {
	// EnableMetrics logs a metrics snapshot at the end of the run
	EnableMetrics bool `yaml:"enable_metrics" json:"enable_metrics" mapstructure:"enable_metrics"`
	// EnableTracing exports spans to stderr
	EnableTracing bool `yaml:"enable_tracing" json:"enable_tracing" mapstructure:"enable_tracing"`
}

// ReportConfig contains the console summary settings.
type ReportConfig struct {
	// Enabled prints the summary after the write
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	// Format is text or json
	Format string `yaml:"format" json:"format" mapstructure:"format" validate:"oneof=text json"`
}

// Default returns a configuration with the built-in defaults.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Employees:       DefaultEmployees,
			Seed:            DefaultSeed,
			MaxIDAttempts:   DefaultMaxIDAttempts,
			ManagerPoolSize: DefaultManagerPoolSize,
		},
		Output: OutputConfig{
			Path:             DefaultOutputPath,
			Format:           "csv",
			Delimiter:        ",",
			CRLF:             true,
			Compression:      "none",
			CompressionLevel: "default",
			Overwrite:        true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Observability: ObservabilityConfig{
			EnableMetrics: true,
		},
		Report: ReportConfig{
			Enabled: true,
			Format:  "text",
		},
	}
}

// Validate checks field constraints and the combinations between them.
// The returned error has type config and names the offending key.
func (c *Config) Validate() error {
	if err := Validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return rerrors.New(rerrors.ErrorTypeConfig, "invalid configuration value").
				WithDetail("field", fe.Namespace()).
				WithDetail("rule", fe.Tag()).
				WithDetail("value", fe.Value())
		}
		return rerrors.Wrap(err, rerrors.ErrorTypeConfig, "invalid configuration")
	}

	if c.Output.Format == "csv" {
		if _, err := c.Output.DelimiterRune(); err != nil {
			return err
		}
	}
	if c.Output.Format == "xlsx" && c.Output.Compression != "none" {
		return rerrors.New(rerrors.ErrorTypeConfig, "xlsx output cannot be compressed").
			WithDetail("compression", c.Output.Compression)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune. It must be exactly one
// character and may not be a quote or a line break.
func (o *OutputConfig) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(o.Delimiter) != 1 {
		return 0, rerrors.New(rerrors.ErrorTypeConfig, "delimiter must be a single character").
			WithDetail("delimiter", o.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(o.Delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, rerrors.New(rerrors.ErrorTypeConfig, "delimiter is not allowed").
			WithDetail("delimiter", o.Delimiter)
	}
	return r, nil
}
