// internal/align/align.go
package align

// Scoring holds the alignment score model. GapOpen is the cost of the first
// base of a gap, GapExtend the cost of each further base (parasail-style
// affine penalties; both are given as positive costs).
type Scoring struct {
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
}

// DefaultScoring matches the nucleotide model readucks has always used:
// +2 match, -1 mismatch, gap open 3, gap extend 1.
var DefaultScoring = Scoring{Match: 2, Mismatch: -1, GapOpen: 3, GapExtend: 1}

// Result is one scored barcode-vs-window alignment.
type Result struct {
	BarcodeID int     `json:"id"`
	Name      string  `json:"name"`
	Score     int     `json:"score"`
	Identity  float64 `json:"identity"` // Matches / Length, 0 when Length is 0
	Matches   int     `json:"matches"`  // identical aligned bases
	Length    int     `json:"length"`   // aligned columns, gaps included
	Offset    int     `json:"offset"`   // 0-based alignment start within the window
	IsStart   bool    `json:"is_start"` // computed against the head window
}

// Trace is the gapped text view of an alignment, for diagnostic rendering.
// All three strings have equal length; Bars holds '|' at matching columns.
type Trace struct {
	Barcode string
	Bars    string
	Window  string
}

var upper [256]byte

func init() {
	for i := 0; i < 256; i++ {
		upper[i] = byte(i)
	}
	for c := byte('a'); c <= 'z'; c++ {
		upper[c] = c - 'a' + 'A'
	}
}

func isACGT(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }

// baseScore treats any ambiguous or unexpected character as a mismatch, so
// the engine never fails on odd input.
func baseScore(a, b byte, sc Scoring) int {
	if a == b && isACGT(a) {
		return sc.Match
	}
	return sc.Mismatch
}

const (
	stateH = iota
	stateE // gap in the barcode (window base unpaired)
	stateF // gap in the window (barcode base unpaired)
)

const negInf = -(1 << 30)

// Align computes a semi-global alignment of barcode against window with
// Gotoh affine gaps: the barcode must be aligned end to end while leading
// and trailing window bases are free. Anchoring the whole barcode keeps
// identity honest — a short spurious exact run in an unrelated window
// cannot masquerade as a high-identity hit.
//
// Empty inputs produce the degenerate zero Result rather than an error.
// Cost is O(len(barcode) x len(window)) time and space; windows are short
// so the full matrices are kept for the traceback.
func Align(barcode, window []byte, sc Scoring) Result {
	r, _ := alignFull(barcode, window, sc, false)
	return r
}

// AlignTrace is Align plus the gapped alignment strings. It is only used on
// the two end-best results at high verbosity, so the extra allocations do
// not matter.
func AlignTrace(barcode, window []byte, sc Scoring) (Result, Trace) {
	return alignFull(barcode, window, sc, true)
}

func alignFull(barcode, window []byte, sc Scoring, withTrace bool) (Result, Trace) {
	m, n := len(barcode), len(window)
	if m == 0 || n == 0 {
		return Result{}, Trace{}
	}

	cols := n + 1
	h := make([]int, (m+1)*cols)
	e := make([]int, (m+1)*cols)
	f := make([]int, (m+1)*cols)

	// Row zero is free: the alignment may start anywhere in the window.
	// Column zero forces unmatched barcode bases into a leading gap.
	for j := 0; j <= n; j++ {
		e[j] = negInf
		f[j] = negInf
	}
	for i := 1; i <= m; i++ {
		f[i*cols] = -(sc.GapOpen + (i-1)*sc.GapExtend)
		h[i*cols] = f[i*cols]
		e[i*cols] = negInf
	}

	for i := 1; i <= m; i++ {
		bi := upper[barcode[i-1]]
		row := i * cols
		prev := (i - 1) * cols
		for j := 1; j <= n; j++ {
			eo := h[row+j-1] - sc.GapOpen
			if ee := e[row+j-1] - sc.GapExtend; ee > eo {
				eo = ee
			}
			e[row+j] = eo

			fo := h[prev+j] - sc.GapOpen
			if fe := f[prev+j] - sc.GapExtend; fe > fo {
				fo = fe
			}
			f[row+j] = fo

			s := h[prev+j-1] + baseScore(bi, upper[window[j-1]], sc)
			if eo > s {
				s = eo
			}
			if fo > s {
				s = fo
			}
			h[row+j] = s
		}
	}

	// Best cell on the last row: the whole barcode is consumed, trailing
	// window bases are free. Rightmost wins ties so the traceback below is
	// deterministic.
	lastRow := m * cols
	best, bestJ := h[lastRow], 0
	for j := 1; j <= n; j++ {
		if h[lastRow+j] >= best {
			best, bestJ = h[lastRow+j], j
		}
	}

	// Traceback from the best cell to row zero. Columns are collected in
	// reverse order; trace buffers are flipped at the end.
	var tb, tw, bars []byte
	matches, length := 0, 0
	i, j, state := m, bestJ, stateH
	for i > 0 {
		idx := i*cols + j
		switch state {
		case stateH:
			switch {
			case j > 0 && h[idx] == h[(i-1)*cols+j-1]+baseScore(upper[barcode[i-1]], upper[window[j-1]], sc):
				length++
				match := upper[barcode[i-1]] == upper[window[j-1]] && isACGT(upper[barcode[i-1]])
				if match {
					matches++
				}
				if withTrace {
					tb = append(tb, barcode[i-1])
					tw = append(tw, window[j-1])
					if match {
						bars = append(bars, '|')
					} else {
						bars = append(bars, ' ')
					}
				}
				i--
				j--
			case j > 0 && h[idx] == e[idx]:
				state = stateE
			default:
				state = stateF
			}
		case stateE:
			length++
			if withTrace {
				tb = append(tb, '-')
				tw = append(tw, window[j-1])
				bars = append(bars, ' ')
			}
			if e[idx] != e[i*cols+j-1]-sc.GapExtend {
				state = stateH
			}
			j--
		case stateF:
			length++
			if withTrace {
				tb = append(tb, barcode[i-1])
				tw = append(tw, '-')
				bars = append(bars, ' ')
			}
			if j > 0 && f[idx] != f[(i-1)*cols+j]-sc.GapExtend {
				state = stateH
			}
			i--
		}
	}

	res := Result{
		Score:   best,
		Matches: matches,
		Length:  length,
		Offset:  j,
	}
	if length > 0 {
		res.Identity = float64(matches) / float64(length)
	}
	if !withTrace {
		return res, Trace{}
	}
	reverse(tb)
	reverse(tw)
	reverse(bars)
	return res, Trace{Barcode: string(tb), Bars: string(bars), Window: string(tw)}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
