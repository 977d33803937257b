// internal/output/writer.go
package output

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/shenwei356/xopen"

	"github.com/rambaut/readucks/internal/demux"
)

// StartRowWriter spins up the writer goroutine for report rows. Rows arrive
// on the returned channel in their final order; the error channel yields
// exactly one value after the input channel is closed and drained.
func StartRowWriter(w io.Writer, header bool, bufSize int) (chan<- demux.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan demux.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if header {
			_, err = fmt.Fprintln(w, TSVHeader)
		}
		for rec := range in {
			if err != nil {
				continue // keep draining so senders never block
			}
			_, err = fmt.Fprintln(w, FormatRow(rec))
		}
		errCh <- err
	}()

	return in, errCh
}

// OpenReport opens the report path for writing; a .gz suffix gets
// transparent compression. Close flushes.
func OpenReport(path string) (io.WriteCloser, error) {
	w, err := xopen.Wopen(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return w, nil
}

// IsBrokenPipe reports whether an error is a broken/closed pipe, e.g. a
// downstream `head` closing early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
