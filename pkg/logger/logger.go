// Package logger provides structured logging for rostergen. Logs go to
// stderr so that stdout carries only the report.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	mu           sync.Mutex
)

// contextKey is the type for context keys
type contextKey string

const (
	// RunIDKey is the context key for the run ID
	RunIDKey contextKey = "run_id"
	// CommandKey is the context key for the CLI command name
	CommandKey contextKey = "command"
)

// Config represents logger configuration
type Config struct {
	Level       string
	Development bool
	Encoding    string // json or console
	// Output defaults to stderr
	Output io.Writer
}

// Init builds the global logger. Later calls replace it.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	mu.Lock()
	globalLogger = l
	mu.Unlock()
	return nil
}

// New creates a logger without touching the global one.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if cfg.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("invalid log encoding %q", cfg.Encoding)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(core, opts...), nil
}

// Get returns the global logger, creating an info-level console logger on
// first use.
func Get() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		l, err := New(Config{Level: "info", Encoding: "console"})
		if err != nil {
			l = zap.NewNop()
		}
		globalLogger = l
	}
	return globalLogger
}

// ContextWithRunID returns a context carrying the run ID.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// ContextWithCommand returns a context carrying the command name.
func ContextWithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

// WithContext returns base with the context values attached as fields.
func WithContext(ctx context.Context, base *zap.Logger) *zap.Logger {
	if base == nil {
		base = Get()
	}
	if command, ok := ctx.Value(CommandKey).(string); ok {
		base = base.With(zap.String("command", command))
	}
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		base = base.With(zap.String("run_id", runID))
	}
	return base
}

// With creates a child of the global logger with additional fields
func With(fields ...zap.Field) *zap.Logger {
	return Get().With(fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}
