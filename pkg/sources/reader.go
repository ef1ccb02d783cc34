// Package sources reads a roster file back into records. The format and
// compression are inferred from the file extension: ".csv.gz" is gzip
// compressed CSV, ".xlsx" is a workbook and so on.
package sources

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ajitpratap0/rostergen/pkg/compression"
	"github.com/ajitpratap0/rostergen/pkg/destinations"
	"github.com/ajitpratap0/rostergen/pkg/models"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

// Options controls how a roster file is read.
type Options struct {
	// Delimiter of CSV input; ',' when zero
	Delimiter rune
	// Format overrides detection from the extension
	Format destinations.Format
	// Compression overrides detection from the extension
	Compression compression.Algorithm
}

// Detect returns the format and compression implied by path.
func Detect(path string) (destinations.Format, compression.Algorithm) {
	alg, base := compression.FromPath(path)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".jsonl", ".ndjson":
		return destinations.JSONL, alg
	case ".xlsx":
		return destinations.XLSX, alg
	default:
		return destinations.CSV, alg
	}
}

// ReadFile reads every record in path and checks the header against the
// roster schema.
func ReadFile(path string, opts Options) ([]*models.EmployeeRecord, error) {
	format, alg := Detect(path)
	if opts.Format != "" {
		format = opts.Format
	}
	if opts.Compression != "" {
		alg = opts.Compression
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to open roster").
			WithDetail("path", path)
	}
	defer f.Close()

	zr, err := compression.NewReader(f, alg)
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to open decompressor").
			WithDetail("path", path).
			WithDetail("compression", alg)
	}
	defer zr.Close()

	var records []*models.EmployeeRecord
	switch format {
	case destinations.CSV:
		records, err = readCSV(zr, opts.Delimiter)
	case destinations.JSONL:
		records, err = readJSONL(zr)
	case destinations.XLSX:
		records, err = readXLSX(zr)
	default:
		return nil, rerrors.New(rerrors.ErrorTypeConfig, "unsupported input format").
			WithDetail("format", format)
	}
	if err != nil {
		if rerrors.TypeOf(err) != "" {
			return nil, err
		}
		return nil, rerrors.Wrap(err, rerrors.ErrorTypeData, "failed to read roster").
			WithDetail("path", path)
	}
	return records, nil
}

func readCSV(r io.Reader, delimiter rune) ([]*models.EmployeeRecord, error) {
	if delimiter == 0 {
		delimiter = ','
	}
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.Comma = delimiter
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, rerrors.New(rerrors.ErrorTypeData, "missing header")
		}
		return nil, err
	}
	if err := schemaError(models.ValidateHeader(header)); err != nil {
		return nil, err
	}

	var records []*models.EmployeeRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		rec, err := models.FromValues(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
}

func readJSONL(r io.Reader) ([]*models.EmployeeRecord, error) {
	cols := models.Columns()
	dec := json.NewDecoder(r)

	var records []*models.EmployeeRecord
	for line := 1; ; line++ {
		var obj map[string]string
		if err := dec.Decode(&obj); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(obj) != len(cols) {
			return nil, schemaError(fmt.Errorf("line %d has %d keys, expected %d", line, len(obj), len(cols)))
		}
		values := make([]string, len(cols))
		for i, c := range cols {
			v, ok := obj[c]
			if !ok {
				return nil, schemaError(fmt.Errorf("line %d is missing %q", line, c))
			}
			values[i] = v
		}
		rec, err := models.FromValues(values)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
}

func readXLSX(r io.Reader) ([]*models.EmployeeRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(destinations.SheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, rerrors.New(rerrors.ErrorTypeData, "missing header")
	}
	if err := schemaError(models.ValidateHeader(rows[0])); err != nil {
		return nil, err
	}

	width := len(rows[0])
	records := make([]*models.EmployeeRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// trailing empty cells are not returned
		values := make([]string, width)
		copy(values, row)
		rec, err := models.FromValues(values)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func schemaError(err error) error {
	if err == nil {
		return nil
	}
	return rerrors.Wrap(err, rerrors.ErrorTypeData, "roster does not match the schema")
}
