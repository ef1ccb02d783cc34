package destinations

import (
	"io"

	"github.com/goccy/go-json"
	"golang.org/x/text/unicode/norm"
)

// jsonlWriter writes one object per line with keys in column order. Key
// order is part of the output contract, so objects are assembled by hand
// instead of from a map.
type jsonlWriter struct {
	w    io.Writer
	keys [][]byte
	line []byte
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{w: w}
}

func (j *jsonlWriter) WriteHeader(columns []string) error {
	j.keys = make([][]byte, len(columns))
	for i, c := range columns {
		k, err := marshalString(c)
		if err != nil {
			return err
		}
		j.keys[i] = k
	}
	return nil
}

func (j *jsonlWriter) WriteRow(values []string) error {
	line := append(j.line[:0], '{')
	for i, v := range values {
		if i > 0 {
			line = append(line, ',')
		}
		line = append(line, j.keys[i]...)
		line = append(line, ':')
		b, err := marshalString(norm.NFC.String(v))
		if err != nil {
			return err
		}
		line = append(line, b...)
	}
	line = append(line, '}', '\n')
	j.line = line
	_, err := j.w.Write(line)
	return err
}

// marshalString encodes s as a JSON string without HTML escaping, so "&"
// stays literal.
func marshalString(s string) ([]byte, error) {
	return json.MarshalWithOption(s, json.DisableHTMLEscape())
}

func (j *jsonlWriter) Close() error {
	return nil
}
