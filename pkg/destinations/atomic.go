package destinations

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
)

const bufferSize = 64 * 1024

// countingWriter counts bytes that reached the file.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeAtomic runs fill against a buffered temp file next to path, then
// syncs, closes and renames it over path. It returns the file size.
func writeAtomic(path string, overwrite bool, fill func(w io.Writer) error) (int64, error) {
	if !overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return 0, rerrors.New(rerrors.ErrorTypeFile, "output file already exists").
				WithDetail("path", path)
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return 0, rerrors.Wrap(statErr, rerrors.ErrorTypeFile, "failed to stat output file").
				WithDetail("path", path)
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return 0, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to create temporary file").
			WithDetail("dir", dir)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	counter := &countingWriter{w: tmp}
	buf := bufio.NewWriterSize(counter, bufferSize)
	if err := fill(buf); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		if rerrors.TypeOf(err) != "" {
			return 0, err
		}
		return 0, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to write output").
			WithDetail("path", path)
	}
	if err := buf.Flush(); err != nil {
		return 0, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to flush output").
			WithDetail("path", path)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return 0, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to set file mode").
			WithDetail("path", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		return 0, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to sync output").
			WithDetail("path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return 0, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to close output").
			WithDetail("path", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		committed = true
		return 0, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to publish output").
			WithDetail("path", path)
	}
	committed = true
	return counter.n, nil
}
