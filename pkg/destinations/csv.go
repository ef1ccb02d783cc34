package destinations

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// csvWriter writes delimited text. Values are NFC-normalized.
type csvWriter struct {
	w   *csv.Writer
	bom io.Closer
	row []string
}

func newCSVWriter(w io.Writer, opts Options) *csvWriter {
	cw := &csvWriter{}
	if opts.BOM {
		tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
		cw.bom = tw
		w = tw
	}
	cw.w = csv.NewWriter(w)
	cw.w.Comma = opts.Delimiter
	cw.w.UseCRLF = opts.CRLF
	return cw
}

func (c *csvWriter) WriteHeader(columns []string) error {
	return c.w.Write(columns)
}

func (c *csvWriter) WriteRow(values []string) error {
	if cap(c.row) < len(values) {
		c.row = make([]string, len(values))
	}
	row := c.row[:len(values)]
	for i, v := range values {
		row[i] = norm.NFC.String(v)
	}
	return c.w.Write(row)
}

func (c *csvWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return err
	}
	if c.bom != nil {
		return c.bom.Close()
	}
	return nil
}
