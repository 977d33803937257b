// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rambaut/readucks/internal/align"
	"github.com/rambaut/readucks/internal/barcodes"
	"github.com/rambaut/readucks/internal/demux"
)

const bcA = "AAGAAAGTTGTCGGTGTCTTTGTG"

func testDemuxer() *demux.Demuxer {
	cat := []barcodes.Definition{{ID: 1, Name: "BC01", Seq: bcA, Set: barcodes.PCR}}
	return demux.New(cat, align.DefaultScoring, demux.Options{
		Threshold: 0.9, SecondaryThreshold: 0.7, Window: 40,
	})
}

func writeFastq(t *testing.T, dir, name string, reads ...string) string {
	t.Helper()
	var b strings.Builder
	for i, seq := range reads {
		fmt.Fprintf(&b, "@%s_r%d\n%s\n+\n%s\n", name, i+1, seq, strings.Repeat("!", len(seq)))
	}
	p := filepath.Join(dir, name+".fastq")
	if err := os.WriteFile(p, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestOrderPreservedAcrossThreads(t *testing.T) {
	dir := t.TempDir()
	filler := strings.Repeat("CT", 40)
	var reads []string
	for i := 0; i < 30; i++ {
		reads = append(reads, filler)
	}
	f1 := writeFastq(t, dir, "aa", reads...)
	f2 := writeFastq(t, dir, "bb", reads...)

	run := func(threads int) []string {
		var names []string
		err := ForEachRead(context.Background(), Config{Threads: threads},
			[]string{f1, f2}, testDemuxer(), func(rec demux.Record) error {
				names = append(names, rec.Name)
				return nil
			})
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		return names
	}

	serial := run(1)
	parallel := run(4)
	if len(serial) != 60 {
		t.Fatalf("got %d records, want 60", len(serial))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("order differs at %d: %q vs %q", i, serial[i], parallel[i])
		}
	}
	if serial[0] != "aa_r1" || serial[30] != "bb_r1" {
		t.Errorf("unexpected order: first=%q, 31st=%q", serial[0], serial[30])
	}
}

func TestFileDoneCallback(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFastq(t, dir, "one", strings.Repeat("CT", 30))
	f2 := writeFastq(t, dir, "two", strings.Repeat("GA", 30))

	var done []string
	err := ForEachRead(context.Background(), Config{
		Threads:  2,
		FileDone: func(p string) { done = append(done, filepath.Base(p)) },
	}, []string{f1, f2}, testDemuxer(), func(demux.Record) error { return nil })
	if err != nil {
		t.Fatalf("ForEachRead: %v", err)
	}
	if len(done) != 2 || done[0] != "one.fastq" || done[1] != "two.fastq" {
		t.Errorf("done = %v", done)
	}
}

func TestVisitErrorAborts(t *testing.T) {
	dir := t.TempDir()
	f := writeFastq(t, dir, "x", strings.Repeat("CT", 30), strings.Repeat("CT", 30))

	boom := errors.New("boom")
	err := ForEachRead(context.Background(), Config{Threads: 2},
		[]string{f}, testDemuxer(), func(demux.Record) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestMissingFileFails(t *testing.T) {
	err := ForEachRead(context.Background(), Config{Threads: 1},
		[]string{filepath.Join(t.TempDir(), "nope.fastq")}, testDemuxer(),
		func(demux.Record) error { return nil })
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCancellation(t *testing.T) {
	dir := t.TempDir()
	f := writeFastq(t, dir, "x", strings.Repeat("CT", 30))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ForEachRead(ctx, Config{Threads: 2}, []string{f}, testDemuxer(),
		func(demux.Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
