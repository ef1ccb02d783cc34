// Package compression wraps output and input streams with a compression
// codec.
//
// # Algorithm Selection
//
//   - Snappy/S2: fast, moderate compression
//   - LZ4: extremely fast, decent compression
//   - Zstd: best compression ratio, good speed
//   - Gzip: widest compatibility
//
// # Basic Usage
//
//	zw, err := compression.NewWriter(f, compression.Zstd, compression.Better)
//	if err != nil {
//	    return err
//	}
//	// write through zw, then
//	err = zw.Close() // flushes the codec; f stays open
//
// Every encoder runs on the calling goroutine and produces the same bytes for
// the same input.
package compression

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm represents a compression algorithm.
type Algorithm string

const (
	// None represents no compression
	None Algorithm = "none"
	// Gzip represents gzip compression
	Gzip Algorithm = "gzip"
	// Snappy represents framed snappy compression
	Snappy Algorithm = "snappy"
	// LZ4 represents lz4 frame compression
	LZ4 Algorithm = "lz4"
	// Zstd represents zstandard compression
	Zstd Algorithm = "zstd"
	// S2 represents s2 compression (Snappy compatible)
	S2 Algorithm = "s2"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{None, Gzip, Zstd, S2, Snappy, LZ4}

// Level represents compression level, controlling the trade-off between
// compression speed and compression ratio.
type Level int

const (
	// Fastest prioritizes speed over compression ratio.
	Fastest Level = 1
	// Default balances speed and compression.
	Default Level = 5
	// Better improves compression at cost of speed.
	Better Level = 7
	// Best maximizes compression ratio.
	Best Level = 9
)

var levelNames = map[string]Level{
	"fastest": Fastest,
	"default": Default,
	"better":  Better,
	"best":    Best,
}

// Parse returns the algorithm named s. The empty string means None.
func Parse(s string) (Algorithm, error) {
	if s == "" {
		return None, nil
	}
	for _, a := range Algorithms {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unsupported compression algorithm: %s", s)
}

// ParseLevel returns the level named s. The empty string means Default.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return Default, nil
	}
	l, ok := levelNames[s]
	if !ok {
		return 0, fmt.Errorf("unsupported compression level: %s", s)
	}
	return l, nil
}

// Extension returns the conventional file extension of the algorithm,
// including the dot. None has no extension.
func Extension(algorithm Algorithm) string {
	switch algorithm {
	case Gzip:
		return ".gz"
	case Snappy:
		return ".snappy"
	case LZ4:
		return ".lz4"
	case Zstd:
		return ".zst"
	case S2:
		return ".s2"
	default:
		return ""
	}
}

// FromPath infers the algorithm from the last extension of path and returns
// the path with that extension removed.
func FromPath(path string) (Algorithm, string) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range Algorithms {
		if e := Extension(a); e != "" && e == ext {
			return a, strings.TrimSuffix(path, filepath.Ext(path))
		}
	}
	return None, path
}

// NewWriter returns a writer that compresses into w. Closing it flushes the
// codec but does not close w.
func NewWriter(w io.Writer, algorithm Algorithm, level Level) (io.WriteCloser, error) {
	switch algorithm {
	case None, "":
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriterLevel(w, mapGzipLevel(level))
	case Zstd:
		return zstd.NewWriter(w,
			zstd.WithEncoderLevel(mapZstdLevel(level)),
			zstd.WithEncoderConcurrency(1))
	case S2:
		return s2.NewWriter(w, append(mapS2Level(level), s2.WriterConcurrency(1))...), nil
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	case LZ4:
		zw := lz4.NewWriter(w)
		if err := zw.Apply(
			lz4.CompressionLevelOption(mapLZ4Level(level)),
			lz4.ConcurrencyOption(1),
		); err != nil {
			return nil, fmt.Errorf("failed to configure lz4 writer: %w", err)
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %s", algorithm)
	}
}

// NewReader returns a reader that decompresses r. Closing it releases the
// codec but does not close r.
func NewReader(r io.Reader, algorithm Algorithm) (io.ReadCloser, error) {
	switch algorithm {
	case None, "":
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case S2:
		return io.NopCloser(s2.NewReader(r)), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %s", algorithm)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Helper functions to map compression levels

func mapGzipLevel(level Level) int {
	switch level {
	case Fastest:
		return gzip.BestSpeed
	case Best:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

func mapLZ4Level(level Level) lz4.CompressionLevel {
	switch level {
	case Fastest:
		return lz4.Fast
	case Better:
		return lz4.Level7
	case Best:
		return lz4.Level9
	default:
		return lz4.Level5
	}
}

func mapZstdLevel(level Level) zstd.EncoderLevel {
	switch level {
	case Fastest:
		return zstd.SpeedFastest
	case Better:
		return zstd.SpeedBetterCompression
	case Best:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

func mapS2Level(level Level) []s2.WriterOption {
	switch level {
	case Better:
		return []s2.WriterOption{s2.WriterBetterCompression()}
	case Best:
		return []s2.WriterOption{s2.WriterBestCompression()}
	default:
		return nil
	}
}
