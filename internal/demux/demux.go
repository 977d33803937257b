// internal/demux/demux.go
package demux

import (
	"github.com/rambaut/readucks/internal/align"
	"github.com/rambaut/readucks/internal/barcodes"
)

// NoneCall is the sentinel call for reads no barcode could be assigned to.
const NoneCall = "none"

// Options control the classification decision.
type Options struct {
	Single             bool    // match one end only
	Threshold          float64 // primary identity cutoff, fraction in (0,1]
	SecondaryThreshold float64 // secondary identity cutoff, fraction in (0,1]
	Window             int     // bases searched at each end of the read
	NeedWindows        bool    // keep head/tail windows on the Record (diagnostics)
}

// Record is the per-read classification result. Exactly one is produced for
// every read. Secondary is only meaningful in double-end mode; Primary and
// Secondary always refer to opposite ends.
type Record struct {
	Name      string
	Call      string
	Primary   align.Result
	Secondary align.Result

	// Populated only when Options.NeedWindows is set.
	Head, Tail []byte
}

// Windows returns the head and tail sub-sequences searched for barcodes.
// Reads shorter than w yield overlapping (possibly identical) windows, which
// is fine: the alignment just sees the same bases twice.
func Windows(seq []byte, w int) (head, tail []byte) {
	if w <= 0 || w >= len(seq) {
		return seq, seq
	}
	return seq[:w], seq[len(seq)-w:]
}

// ScanEnd aligns every catalog barcode against one window and returns the
// single best result. Ties resolve by higher score, then higher identity,
// then lower barcode id, so the outcome is deterministic even when every
// alignment is the degenerate zero.
func ScanEnd(window []byte, cat []barcodes.Definition, sc align.Scoring, isStart bool) align.Result {
	var best align.Result
	haveBest := false
	for _, d := range cat {
		r := align.Align([]byte(d.Seq), window, sc)
		r.BarcodeID = d.ID
		r.Name = d.Name
		r.IsStart = isStart
		if !haveBest || better(r, best) {
			best = r
			haveBest = true
		}
	}
	return best
}

func better(a, b align.Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Identity != b.Identity {
		return a.Identity > b.Identity
	}
	return a.BarcodeID < b.BarcodeID
}

// Classify turns the two end-best results into a final call. The higher
// scoring end is primary (the head on an exact tie); in double-end mode the
// secondary end must agree on the barcode and clear its own threshold.
func Classify(headBest, tailBest align.Result, opts Options) (call string, primary, secondary align.Result) {
	primary, secondary = headBest, tailBest
	if tailBest.Score > headBest.Score {
		primary, secondary = tailBest, headBest
	}

	if primary.Identity < opts.Threshold {
		return NoneCall, primary, secondary
	}
	if opts.Single {
		return primary.Name, primary, secondary
	}
	if secondary.BarcodeID == primary.BarcodeID && secondary.Identity >= opts.SecondaryThreshold {
		return primary.Name, primary, secondary
	}
	return NoneCall, primary, secondary
}

// Demuxer binds a catalog, score model and decision options. It is
// read-only after construction and safe to share across workers.
type Demuxer struct {
	Catalog []barcodes.Definition
	Scoring align.Scoring
	Opts    Options
}

func New(cat []barcodes.Definition, sc align.Scoring, opts Options) *Demuxer {
	return &Demuxer{Catalog: cat, Scoring: sc, Opts: opts}
}

// Demux runs the whole per-read pipeline: window extraction, one scan per
// end, classification. It is a pure function of its inputs.
func (d *Demuxer) Demux(name string, seq []byte) Record {
	head, tail := Windows(seq, d.Opts.Window)

	headBest := ScanEnd(head, d.Catalog, d.Scoring, true)
	tailBest := ScanEnd(tail, d.Catalog, d.Scoring, false)

	call, primary, secondary := Classify(headBest, tailBest, d.Opts)

	rec := Record{Name: name, Call: call, Primary: primary, Secondary: secondary}
	if d.Opts.NeedWindows {
		rec.Head = append([]byte(nil), head...)
		rec.Tail = append([]byte(nil), tail...)
	}
	return rec
}
