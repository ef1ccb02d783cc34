// Package testutil provides testing utilities for rostergen
package testutil

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/rostergen/pkg/config"
)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// TestContext creates a test context with a 30-second timeout.
// The caller must call the returned cancel function to avoid leaks.
func TestContext(_ *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// TestConfig returns the default configuration writing to name inside a
// fresh temporary directory. Metrics logging and the report are off.
func TestConfig(t *testing.T, name string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Path = filepath.Join(t.TempDir(), name)
	cfg.Observability.EnableMetrics = false
	cfg.Report.Enabled = false
	return cfg
}

// ReadCSV parses the CSV file at path with the given delimiter.
func ReadCSV(t *testing.T, path string, comma rune) [][]string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec
	require.NoError(t, err)
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

// CountLines returns the number of line terminators in the file at path.
func CountLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec
	require.NoError(t, err)
	return bytes.Count(data, []byte("\n"))
}
