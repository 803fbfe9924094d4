package splitfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/pkg/rlog"
	"github.com/pkg/errors"
)

// Encode writes xs one decimal per line, each line newline terminated.
func Encode(w io.Writer, xs []int32) error {
	sw := NewWriter(w)
	for _, x := range xs {
		if err := sw.Append(x); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses a split file. Blank lines are skipped and surrounding
// whitespace is ignored; order is preserved.
func Decode(r io.Reader) ([]int32, error) {
	var ret []int32

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return nil, rerror.Newf(rerror.RG_SPLIT_FILE_ERROR, "line %d: %q is not a 32 bit integer", lineNo, line)
		}
		ret = append(ret, int32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, rerror.Newf(rerror.RG_IO_ERROR, "failed to read split file: %w", err)
	}
	return ret, nil
}

// Read loads the split file at path.
func Read(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rerror.Newf(rerror.RG_CONFIG_ERROR, "split file %q does not exist", path)
		}
		return nil, rerror.Newf(rerror.RG_IO_ERROR, "failed to open split file %q: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rlog.Zero.Error().Err(err).Str("path", path).Msg("splitfile: failed to close file")
		}
	}()

	xs, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "split file %q", path)
	}
	rlog.Zero.Debug().Str("path", path).Int("splits", len(xs)).Msg("splitfile: read split file")
	return xs, nil
}

// Write replaces the file at path with xs.
func Write(path string, xs []int32) error {
	f, err := Recreate(path)
	if err != nil {
		return err
	}
	if err := Encode(f, xs); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return rerror.Newf(rerror.RG_IO_ERROR, "failed to close split file %q: %w", path, err)
	}
	return nil
}

// Recreate deletes path if it exists and creates it empty.
func Recreate(path string) (*os.File, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, rerror.Newf(rerror.RG_IO_ERROR, "failed to delete %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, rerror.Newf(rerror.RG_IO_ERROR, "failed to create %q: %w", path, err)
	}
	return f, nil
}

// WithWriter recreates path, runs fn with a Writer on it and closes the file.
// The file is emptied before fn runs, so a failing fn never leaves the
// content of an earlier run behind.
func WithWriter(path string, fn func(w *Writer) error) error {
	f, err := Recreate(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			rlog.Zero.Error().Err(err).Str("path", path).Msg("splitfile: failed to close file")
		}
	}()

	if err := fn(NewWriter(f)); err != nil {
		return errors.Wrapf(err, "split file %q", path)
	}
	return nil
}
