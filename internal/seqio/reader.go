// internal/seqio/reader.go
package seqio

import (
	"context"
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

func init() {
	// Base validation is the demuxer's job (unexpected characters simply
	// score as mismatches), so skip the per-record alphabet scan.
	seq.ValidateSeq = false
}

// Read is one sequencing read. Qualities are parsed by the underlying
// reader but never carried past this boundary.
type Read struct {
	Name string
	Seq  []byte
}

// EachRead streams the reads of one FASTQ/FASTA file (plain or gzipped) in
// file order, calling emit for every record. It stops early and returns the
// context's error when ctx is cancelled, and propagates any emit error.
func EachRead(ctx context.Context, path string, emit func(Read) error) error {
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer reader.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read %s: %w", path, err)
		}
		// fastx reuses the record's buffers between calls.
		r := Read{
			Name: string(record.ID),
			Seq:  append([]byte(nil), record.Seq.Seq...),
		}
		if err := emit(r); err != nil {
			return err
		}
	}
}
