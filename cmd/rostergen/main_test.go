package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestGenerate_Defaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "roster.csv")

	code, stdout, stderr := execute(t, "generate", "-n", "25", "-o", out, "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)

	assert.True(t, strings.HasPrefix(stdout, "Written 25 employees to "+out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 26, bytes.Count(data, []byte("\r\n")))
}

func TestGenerate_SeedFlag(t *testing.T) {
	dir := t.TempDir()
	gen := func(name, seed string) []byte {
		path := filepath.Join(dir, name)
		code, _, stderr := execute(t, "generate", "-n", "40", "--seed", seed, "-o", path, "--no-report", "--log-level", "error")
		require.Equal(t, exitOK, code, stderr)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}
	assert.Equal(t, gen("a.csv", "9"), gen("b.csv", "9"))
	assert.NotEqual(t, gen("a.csv", "9"), gen("c.csv", "10"))
}

func TestGenerate_ConfigFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from-file.jsonl")
	cfgPath := filepath.Join(dir, "rostergen.yaml")
	cfg := fmt.Sprintf("generator:\n  employees: 7\noutput:\n  path: %s\n  format: jsonl\nreport:\n  format: json\nlogging:\n  level: error\n", out)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	code, stdout, stderr := execute(t, "generate", "-c", cfgPath)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, `"records": 7`)

	code, stdout, stderr = execute(t, "generate", "-c", cfgPath, "-n", "3")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, `"records": 3`)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(data, []byte("\n")))
}

func TestGenerate_Trace(t *testing.T) {
	out := filepath.Join(t.TempDir(), "traced.csv")

	code, _, stderr := execute(t, "generate", "-n", "5", "-o", out, "--trace", "--no-report", "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)
	for _, span := range []string{`"Name":"generate"`, `"Name":"write"`, `"Name":"report"`} {
		assert.Contains(t, stderr, span)
	}
}

func TestGenerate_Failures(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.csv")
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0o600))

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown flag", []string{"generate", "--bogus"}, exitUsage},
		{"bad flag value", []string{"generate", "-n", "many"}, exitUsage},
		{"positional argument", []string{"generate", "extra"}, exitUsage},
		{"invalid format", []string{"generate", "--format", "parquet", "-o", filepath.Join(dir, "x")}, exitValidation},
		{"negative count", []string{"generate", "-n", "-1", "-o", filepath.Join(dir, "neg.csv")}, exitValidation},
		{"xlsx compressed", []string{"generate", "--format", "xlsx", "--compression", "gzip", "-o", filepath.Join(dir, "x.xlsx")}, exitValidation},
		{"missing config file", []string{"generate", "-c", filepath.Join(dir, "none.yaml")}, exitValidation},
		{"no overwrite", []string{"generate", "-n", "1", "-o", existing, "--no-overwrite", "--log-level", "error"}, exitFile},
		{"missing directory", []string{"generate", "-n", "1", "-o", filepath.Join(dir, "nope", "x.csv"), "--log-level", "error"}, exitFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, tt.args...)
			assert.Equal(t, tt.code, code, stderr)
			assert.Contains(t, stderr, "Error:")
		})
	}

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestInspect(t *testing.T) {
	out := filepath.Join(t.TempDir(), "roster.csv.gz")
	code, _, stderr := execute(t, "generate", "-n", "30", "-o", out, "--compression", "gzip", "--no-report", "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)

	code, stdout, stderr := execute(t, "inspect", out)
	require.Equal(t, exitOK, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "Read 30 employees\n"))
	assert.Contains(t, stdout, "Columns: 36")

	code, stdout, _ = execute(t, "inspect", out, "--report-format", "json")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"records": 30`)

	code, _, _ = execute(t, "inspect")
	assert.Equal(t, exitUsage, code)

	code, _, _ = execute(t, "inspect", out, "--report-format", "yaml")
	assert.Equal(t, exitUsage, code)
}

func TestInspect_BadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\r\n1,2,3\r\n"), 0o600))

	code, _, stderr := execute(t, "inspect", path)
	assert.Equal(t, exitData, code, stderr)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rostergen.yaml")

	code, stdout, stderr := execute(t, "config", "init", path)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "employees: 1000")
	assert.Contains(t, string(data), "seed: 42")

	code, _, _ = execute(t, "config", "init", path)
	assert.Equal(t, exitFile, code)

	code, _, stderr = execute(t, "config", "init", path, "--force")
	assert.Equal(t, exitOK, code, stderr)

	out := filepath.Join(filepath.Dir(path), "from-init.csv")
	code, stdout, stderr = execute(t, "generate", "-c", path, "-o", out, "-n", "2", "--log-level", "error")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Written 2 employees")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := execute(t, "version")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "rostergen v"+version)
	assert.Contains(t, stdout, "Go version:")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"explicit", withCode(exitUsage, errors.New("bad arg")), exitUsage},
		{"config", rerrors.New(rerrors.ErrorTypeConfig, "bad"), exitValidation},
		{"validation", rerrors.New(rerrors.ErrorTypeValidation, "bad"), exitValidation},
		{"file", fmt.Errorf("write: %w", rerrors.New(rerrors.ErrorTypeFile, "bad")), exitFile},
		{"data", rerrors.New(rerrors.ErrorTypeData, "bad"), exitData},
		{"exhausted", rerrors.New(rerrors.ErrorTypeExhausted, "bad"), exitData},
		{"cancelled", context.Canceled, exitFailure},
		{"untyped", errors.New("boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
	assert.Nil(t, withCode(exitUsage, nil))
}
