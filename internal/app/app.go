// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/rambaut/readucks/internal/align"
	"github.com/rambaut/readucks/internal/barcodes"
	"github.com/rambaut/readucks/internal/cli"
	"github.com/rambaut/readucks/internal/cmdutil"
	"github.com/rambaut/readucks/internal/demux"
	"github.com/rambaut/readucks/internal/output"
	"github.com/rambaut/readucks/internal/pipeline"
	"github.com/rambaut/readucks/internal/pretty"
	"github.com/rambaut/readucks/internal/seqio"
	"github.com/rambaut/readucks/internal/version"
)

// RunContext wires the whole program together: flags, catalog, file
// discovery, the demux pipeline, the report writer and the run summary.
// Exit codes: 0 ok, 2 usage/input error, 3 runtime error, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("readucks")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		cli.PrintUsage(fs, stdout)
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintUsage(fs, stdout)
			return 0
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "readucks version %s\n", version.Version)
		return 0
	}

	catalog, err := barcodes.Restrict(opts.Set.Catalog(), opts.LimitBarcodesTo)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	files, err := seqio.FindInputFiles(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	log := cmdutil.NewLogger(stderr, opts.Verbosity)
	heading := color.New(color.Bold, color.Underline)

	if opts.Verbosity > 0 {
		heading.Fprintf(stdout, "\n%d read files found\n", len(files))
	}
	for _, f := range files {
		log.Debugf("read file: %s", f)
	}

	report, err := output.OpenReport(opts.Output)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	d := demux.New(catalog, align.Scoring{
		Match:     opts.MatchScore,
		Mismatch:  opts.MismatchScore,
		GapOpen:   opts.GapOpen,
		GapExtend: opts.GapExtend,
	}, demux.Options{
		Single:             opts.Single,
		Threshold:          opts.Threshold / 100.0,
		SecondaryThreshold: opts.SecondaryThreshold / 100.0,
		Window:             opts.Window,
		NeedWindows:        opts.Verbosity > 1,
	})

	var pbs *mpb.Progress
	var bar *mpb.Bar
	if opts.Verbosity > 0 {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(stderr))
		bar = pbs.AddBar(int64(len(files)),
			mpb.PrependDecorators(decor.Name("files "), decor.CountersNoUnit("%d / %d")),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}

	outw := bufio.NewWriter(report)
	rows, writeErr := output.StartRowWriter(outw, true, threads*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	counts := output.NewCounts()
	start := time.Now()

	perr := pipeline.ForEachRead(ctx, pipeline.Config{
		Threads: threads,
		FileDone: func(path string) {
			log.Debugf("finished %s", path)
			if bar != nil {
				bar.Increment()
			}
		},
	}, files, d, func(rec demux.Record) error {
		counts.Add(rec)
		if opts.Verbosity > 1 {
			fmt.Fprint(stdout, pretty.RenderRecord(rec, catalog, d.Scoring))
		}
		select {
		case rows <- rec:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(rows)
	werr := <-writeErr

	if bar != nil {
		if perr != nil {
			bar.Abort(true)
		}
		pbs.Wait()
	}

	if werr == nil {
		werr = outw.Flush()
	}
	if cerr := report.Close(); werr == nil {
		werr = cerr
	}
	if output.IsBrokenPipe(werr) {
		werr = nil
	}
	if werr != nil {
		fmt.Fprintln(stderr, "Error:", werr)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, "Error:", perr)
		return 3
	}

	if opts.Verbosity > 0 {
		fmt.Fprintf(stdout, "\nTime taken: %.2f secs\n", time.Since(start).Seconds())
		heading.Fprintln(stdout, "\nBarcodes called:")
		for _, call := range counts.Calls() {
			fmt.Fprintf(stdout, "%s: %d\n", call, counts.Get(call))
		}
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
