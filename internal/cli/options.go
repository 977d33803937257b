// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/rambaut/readucks/internal/barcodes"
	"github.com/rambaut/readucks/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Input     string
	Output    string
	Verbosity int

	// Demuxing
	Single             bool
	Set                barcodes.Set
	LimitBarcodesTo    []int
	Threshold          float64 // percent
	SecondaryThreshold float64 // percent
	Window             int

	// Scoring
	MatchScore    int
	MismatchScore int
	GapOpen       int
	GapExtend     int

	// Performance
	Threads int

	Version bool
}

// NewFlagSet returns a configured FlagSet.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

// PrintUsage writes the full help text to w.
func PrintUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w,
		`%s: a simple demuxing tool for nanopore sequencing data

License: GPL-3.0
Version: %s

Usage of %s:
`, fs.Name(), version.Version, fs.Name())
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var native, pcr, rapid bool

	// Main options
	fs.StringVarP(&opt.Input, "input", "i", "", "FASTQ/FASTA file of reads, or a directory searched recursively for read files [*]")
	fs.StringVarP(&opt.Output, "output", "o", "", "output report filename (.gz for compression) [*]")
	fs.IntVarP(&opt.Verbosity, "verbosity", "v", 1, "level of output information: 0 = none, 1 = some, 2 = lots [1]")

	// Demuxing options
	fs.BoolVar(&opt.Single, "single", false, "only attempt to match a barcode at one end (default double) [false]")
	fs.BoolVar(&native, "native_barcodes", false, "only attempt to match the 24 native barcodes (default) [false]")
	fs.BoolVar(&pcr, "pcr_barcodes", false, "only attempt to match the 96 PCR barcodes [false]")
	fs.BoolVar(&rapid, "rapid_barcodes", false, "only attempt to match the 12 rapid barcodes [false]")
	fs.IntSliceVar(&opt.LimitBarcodesTo, "limit_barcodes_to", nil, "only look for the barcodes with these numbers (in the active set)")
	fs.Float64Var(&opt.Threshold, "threshold", 90.0, "a read must have at least this percent identity to a barcode [90]")
	fs.Float64Var(&opt.SecondaryThreshold, "secondary_threshold", 70.0, "the barcode at the other end must have at least this percent identity (and match the first one) [70]")
	fs.IntVar(&opt.Window, "window", 150, "bases searched for a barcode at each end of a read (0 = whole read) [150]")

	// Scoring options
	fs.IntVar(&opt.MatchScore, "match_score", 2, "alignment reward for a base match [2]")
	fs.IntVar(&opt.MismatchScore, "mismatch_score", -1, "alignment penalty for a base mismatch [-1]")
	fs.IntVar(&opt.GapOpen, "gap_open", 3, "alignment cost to open a gap [3]")
	fs.IntVar(&opt.GapExtend, "gap_extend", 1, "alignment cost to extend a gap [1]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 1, "number of worker threads (0 = all CPUs) [1]")

	// Help
	fs.BoolVarP(&help, "help", "h", false, "show this help message and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "show the version number and exit [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	if opt.Output == "" {
		return opt, errors.New("--output is required")
	}
	if opt.Verbosity < 0 || opt.Verbosity > 2 {
		return opt, fmt.Errorf("--verbosity must be 0, 1 or 2 (got %d)", opt.Verbosity)
	}

	nsets := 0
	for _, b := range []bool{native, pcr, rapid} {
		if b {
			nsets++
		}
	}
	if nsets > 1 {
		return opt, errors.New("only one of the following options may be used: --native_barcodes, --pcr_barcodes or --rapid_barcodes")
	}
	opt.Set = barcodes.Native
	switch {
	case pcr:
		opt.Set = barcodes.PCR
	case rapid:
		opt.Set = barcodes.Rapid
	}

	if opt.Single && fs.Changed("secondary_threshold") {
		return opt, errors.New("the option --secondary_threshold is not available with --single")
	}
	for _, name := range []string{"threshold", "secondary_threshold"} {
		v, _ := fs.GetFloat64(name)
		if v > 0.0 && v < 1.0 {
			return opt, fmt.Errorf("--%s should be given as a percentage, not a fraction (got %g)", name, v)
		}
		if v <= 0.0 || v > 100.0 {
			return opt, fmt.Errorf("--%s must be a percentage in (0,100] (got %g)", name, v)
		}
	}

	if opt.Window < 0 {
		return opt, errors.New("--window must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.GapOpen < 0 || opt.GapExtend < 0 {
		return opt, errors.New("--gap_open and --gap_extend are costs and must be ≥ 0")
	}
	return opt, nil
}
