// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"github.com/rambaut/readucks/internal/demux"
	"github.com/rambaut/readucks/internal/seqio"
)

// Config controls the read-processing pipeline.
type Config struct {
	Threads int // worker goroutines (>=1); 1 reproduces strictly sequential processing

	// FileDone, when set, is called after each input file has been fully
	// read (progress reporting).
	FileDone func(path string)
}

// ForEachRead streams every read of every file through the demuxer and
// calls visit with each classification record. Reads are dispatched to a
// worker pool; workers hold only read-only references to the demuxer.
// Records are re-sequenced by the collector, so visit always observes
// input order regardless of thread count.
//
// The first error (including context cancellation) aborts the run.
func ForEachRead(
	ctx context.Context,
	cfg Config,
	files []string,
	d *demux.Demuxer,
	visit func(demux.Record) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx  int
		read seqio.Read
	}
	type result struct {
		idx int
		rec demux.Record
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					rec := d.Demux(j.read.Name, j.read.Seq)
					select {
					case results <- result{idx: j.idx, rec: rec}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: restore input order, then hand off to visit.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]demux.Record, cfg.Threads*4)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.idx] = r.rec
			for {
				rec, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(rec); err != nil {
					cerr = err
					break
				}
			}
		}
	}()

	// Feed reads in source order across files.
	var feedErr error
	idx := 0
feed:
	for _, path := range files {
		err := seqio.EachRead(ctx, path, func(r seqio.Read) error {
			select {
			case jobs <- job{idx: idx, read: r}:
				idx++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			feedErr = err
			break feed
		}
		if cfg.FileDone != nil {
			cfg.FileDone(path)
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if feedErr != nil {
		return feedErr
	}
	return cerr
}
