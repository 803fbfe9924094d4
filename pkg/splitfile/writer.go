package splitfile

import (
	"bufio"
	"io"
	"strconv"

	"github.com/gbif/regiontools/pkg/models/rerror"
)

// Writer appends split keys to a split file, flushing after every line so
// that a failed run leaves all previously appended keys on disk.
type Writer struct {
	w     *bufio.Writer
	buf   []byte
	count int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (sw *Writer) Append(x int32) error {
	sw.buf = strconv.AppendInt(sw.buf[:0], int64(x), 10)
	sw.buf = append(sw.buf, '\n')

	if _, err := sw.w.Write(sw.buf); err != nil {
		return rerror.Newf(rerror.RG_IO_ERROR, "failed to write split key %d: %w", x, err)
	}
	if err := sw.w.Flush(); err != nil {
		return rerror.Newf(rerror.RG_IO_ERROR, "failed to flush split key %d: %w", x, err)
	}
	sw.count++
	return nil
}

// Count is the number of keys written so far.
func (sw *Writer) Count() int {
	return sw.count
}
