package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/rostergen/pkg/compression"
	"github.com/ajitpratap0/rostergen/pkg/destinations"
	"github.com/ajitpratap0/rostergen/pkg/models"
	"github.com/ajitpratap0/rostergen/pkg/refdata"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
	"github.com/ajitpratap0/rostergen/pkg/sampler"
)

func generated(t *testing.T, n int) []*models.EmployeeRecord {
	t.Helper()
	s, err := sampler.New(sampler.Config{Seed: 11}, refdata.Default())
	require.NoError(t, err)
	records, err := s.Generate(context.Background(), n)
	require.NoError(t, err)
	return records
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path   string
		format destinations.Format
		alg    compression.Algorithm
	}{
		{"roster.csv", destinations.CSV, compression.None},
		{"roster.csv.gz", destinations.CSV, compression.Gzip},
		{"roster.jsonl.zst", destinations.JSONL, compression.Zstd},
		{"roster.ndjson", destinations.JSONL, compression.None},
		{"roster.xlsx", destinations.XLSX, compression.None},
		{"roster.txt", destinations.CSV, compression.None},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, alg := Detect(tt.path)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.alg, alg)
		})
	}
}

func TestReadFile_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
		opts destinations.Options
	}{
		{"csv", "r.csv", destinations.Options{Format: destinations.CSV, Delimiter: ',', CRLF: true}},
		{"csv bom", "r.csv", destinations.Options{Format: destinations.CSV, Delimiter: ',', BOM: true}},
		{"csv gzip", "r.csv.gz", destinations.Options{Format: destinations.CSV, Delimiter: ',', Compression: compression.Gzip}},
		{"jsonl zstd", "r.jsonl.zst", destinations.Options{Format: destinations.JSONL, Compression: compression.Zstd}},
		{"jsonl lz4", "r.jsonl.lz4", destinations.Options{Format: destinations.JSONL, Compression: compression.LZ4}},
		{"xlsx", "r.xlsx", destinations.Options{Format: destinations.XLSX}},
	}

	records := generated(t, 40)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Path = filepath.Join(t.TempDir(), tt.file)
			tt.opts.Overwrite = true
			_, err := destinations.Write(context.Background(), tt.opts, records)
			require.NoError(t, err)

			got, err := ReadFile(tt.opts.Path, Options{})
			require.NoError(t, err)
			if diff := cmp.Diff(records, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFile_Delimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.csv")
	records := generated(t, 5)
	_, err := destinations.Write(context.Background(), destinations.Options{
		Path: path, Format: destinations.CSV, Delimiter: ';', Overwrite: true,
	}, records)
	require.NoError(t, err)

	got, err := ReadFile(path, Options{Delimiter: ';'})
	require.NoError(t, err)
	assert.Len(t, got, 5)

	_, err = ReadFile(path, Options{})
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeData))
}

func TestReadFile_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.csv")
	_, err := destinations.Write(context.Background(), destinations.Options{
		Path: path, Format: destinations.CSV, Delimiter: ',', Overwrite: true,
	}, nil)
	require.NoError(t, err)

	got, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.csv"), Options{})
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeFile))

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = ReadFile(empty, Options{})
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeData))
	assert.ErrorContains(t, err, "missing header")

	wrong := filepath.Join(dir, "wrong.csv")
	require.NoError(t, os.WriteFile(wrong, []byte("a,b,c\n1,2,3\n"), 0o600))
	_, err = ReadFile(wrong, Options{})
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeData))
	assert.ErrorContains(t, err, "schema")

	notGzip := filepath.Join(dir, "plain.csv.gz")
	require.NoError(t, os.WriteFile(notGzip, []byte("plain text"), 0o600))
	_, err = ReadFile(notGzip, Options{})
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeFile))

	badJSON := filepath.Join(dir, "bad.jsonl")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"Employee ID":"K100000"}`+"\n"), 0o600))
	_, err = ReadFile(badJSON, Options{})
	assert.True(t, rerrors.IsType(err, rerrors.ErrorTypeData))
}
