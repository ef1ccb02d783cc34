// Package destinations writes roster records to a single output file.
//
// Three formats are supported:
//
//   - csv: header row then one row per record, standard quoting
//   - jsonl: one JSON object per record, keys in column order
//   - xlsx: one "Roster" sheet with a bold header, every cell as text
//
// csv and jsonl output can be compressed. Every write goes to a temporary
// file in the target directory that is renamed over the target only after it
// was written and synced completely.
//
// # Example Usage
//
//	res, err := destinations.Write(ctx, destinations.Options{
//	    Path:      "roster.csv.gz",
//	    Format:    destinations.CSV,
//	    Delimiter: ',',
//	    Compression: compression.Gzip,
//	    Overwrite: true,
//	}, records)
package destinations

import (
	"context"
	"fmt"
	"io"

	"github.com/ajitpratap0/rostergen/pkg/compression"
	"github.com/ajitpratap0/rostergen/pkg/models"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// Format is an output file format.
type Format string

const (
	// CSV is delimited text
	CSV Format = "csv"
	// JSONL is newline-delimited JSON
	JSONL Format = "jsonl"
	// XLSX is an Excel workbook
	XLSX Format = "xlsx"
)

// ctxCheckEvery is how many rows are written between context checks.
const ctxCheckEvery = 1024

// Options describes one output file.
type Options struct {
	Path        string
	Format      Format
	Delimiter   rune
	CRLF        bool
	BOM         bool
	Compression compression.Algorithm
	Level       compression.Level
	Overwrite   bool
}

// Result describes a completed write.
type Result struct {
	Path    string
	Records int
	Bytes   int64
}

// RowWriter encodes rows of text values in one format.
type RowWriter interface {
	WriteHeader(columns []string) error
	WriteRow(values []string) error
	// Close flushes buffered output. It does not close the underlying writer.
	Close() error
}

// NewRowWriter returns the encoder for opts.Format writing to w.
func NewRowWriter(w io.Writer, opts Options) (RowWriter, error) {
	switch opts.Format {
	case CSV, "":
		return newCSVWriter(w, opts), nil
	case JSONL:
		return newJSONLWriter(w), nil
	case XLSX:
		return newXLSXWriter(w)
	default:
		return nil, rerrors.New(rerrors.ErrorTypeConfig, "unsupported output format").
			WithDetail("format", opts.Format)
	}
}

func (o Options) validate() error {
	if o.Path == "" {
		return rerrors.New(rerrors.ErrorTypeConfig, "output path is required")
	}
	if o.Format == XLSX && o.Compression != compression.None && o.Compression != "" {
		return rerrors.New(rerrors.ErrorTypeConfig, "xlsx output cannot be compressed").
			WithDetail("compression", o.Compression)
	}
	if (o.Format == CSV || o.Format == "") && o.Delimiter == 0 {
		return rerrors.New(rerrors.ErrorTypeConfig, "csv delimiter is required")
	}
	return nil
}

// Write writes the header and records to opts.Path. On any error the target
// is left as it was and no temporary file remains.
func Write(ctx context.Context, opts Options, records []*models.EmployeeRecord) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	n, err := writeAtomic(opts.Path, opts.Overwrite, func(w io.Writer) error {
		return encode(ctx, w, opts, records)
	})
	if err != nil {
		return nil, err
	}
	return &Result{Path: opts.Path, Records: len(records), Bytes: n}, nil
}

func encode(ctx context.Context, w io.Writer, opts Options, records []*models.EmployeeRecord) error {
	zw, err := compression.NewWriter(w, opts.Compression, opts.Level)
	if err != nil {
		return rerrors.Wrap(err, rerrors.ErrorTypeConfig, "failed to create compressor").
			WithDetail("compression", opts.Compression)
	}
	rw, err := NewRowWriter(zw, opts)
	if err != nil {
		return err
	}

	if err := rw.WriteHeader(models.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, rec := range records {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := rw.WriteRow(rec.Values()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	if err := rw.Close(); err != nil {
		return fmt.Errorf("failed to flush %s output: %w", opts.Format, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush compressor: %w", err)
	}
	return nil
}
