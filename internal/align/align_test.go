// internal/align/align_test.go
package align

import (
	"strings"
	"testing"
)

const bc = "CCTGGTAACTGGGACACAAGACTC" // NB03 core, 24 nt

func TestExactMatchAtOffset(t *testing.T) {
	window := []byte("TTTTT" + bc + "AAAAAAAAAA")
	r := Align([]byte(bc), window, DefaultScoring)

	if r.Score != 2*len(bc) {
		t.Errorf("score = %d, want %d", r.Score, 2*len(bc))
	}
	if r.Identity != 1.0 {
		t.Errorf("identity = %v, want 1.0", r.Identity)
	}
	if r.Matches != len(bc) || r.Length != len(bc) {
		t.Errorf("matches/length = %d/%d, want %d/%d", r.Matches, r.Length, len(bc), len(bc))
	}
	if r.Offset != 5 {
		t.Errorf("offset = %d, want 5", r.Offset)
	}
}

func TestSingleMismatch(t *testing.T) {
	mutated := []byte(bc)
	mutated[10] = 'A' // T -> A
	r := Align([]byte(bc), append(mutated, []byte("GGGGG")...), DefaultScoring)

	if r.Matches != len(bc)-1 || r.Length != len(bc) {
		t.Errorf("matches/length = %d/%d, want %d/%d", r.Matches, r.Length, len(bc)-1, len(bc))
	}
	want := 2*(len(bc)-1) - 1
	if r.Score != want {
		t.Errorf("score = %d, want %d", r.Score, want)
	}
}

func TestDeletionInWindow(t *testing.T) {
	// Window lacks one barcode base: one barcode base aligns to a gap.
	window := []byte(bc[:10] + bc[11:])
	r := Align([]byte(bc), window, DefaultScoring)

	if r.Length != len(bc) {
		t.Errorf("length = %d, want %d", r.Length, len(bc))
	}
	if r.Matches != len(bc)-1 {
		t.Errorf("matches = %d, want %d", r.Matches, len(bc)-1)
	}
	want := 2*(len(bc)-1) - DefaultScoring.GapOpen
	if r.Score != want {
		t.Errorf("score = %d, want %d", r.Score, want)
	}
}

func TestInsertionInWindow(t *testing.T) {
	// Window has one extra base inside the barcode: a window base is
	// unpaired, lengthening the alignment by one gap column.
	window := []byte(bc[:12] + "A" + bc[12:])
	r := Align([]byte(bc), window, DefaultScoring)

	if r.Length != len(bc)+1 {
		t.Errorf("length = %d, want %d", r.Length, len(bc)+1)
	}
	if r.Matches != len(bc) {
		t.Errorf("matches = %d, want %d", r.Matches, len(bc))
	}
	want := 2*len(bc) - DefaultScoring.GapOpen
	if r.Score != want {
		t.Errorf("score = %d, want %d", r.Score, want)
	}
}

func TestWholeBarcodeIsAlwaysAligned(t *testing.T) {
	// With an unrelated window, the best alignment still spans the whole
	// barcode, so identity stays low instead of collapsing to a short
	// perfect run.
	window := []byte(strings.Repeat("C", 100))
	r := Align([]byte(bc), window, DefaultScoring)

	if r.Length < len(bc) {
		t.Errorf("length = %d, want >= %d", r.Length, len(bc))
	}
	if r.Identity > 0.5 {
		t.Errorf("identity = %v for unrelated window, want <= 0.5", r.Identity)
	}
}

func TestEmptyInputs(t *testing.T) {
	for _, tc := range []struct{ barcode, window string }{
		{"", "ACGT"},
		{"ACGT", ""},
		{"", ""},
	} {
		r := Align([]byte(tc.barcode), []byte(tc.window), DefaultScoring)
		if r.Score != 0 || r.Identity != 0 || r.Length != 0 || r.Matches != 0 {
			t.Errorf("Align(%q, %q) = %+v, want zero result", tc.barcode, tc.window, r)
		}
	}
}

func TestAmbiguousBasesAreMismatches(t *testing.T) {
	r := Align([]byte("NNNN"), []byte("NNNN"), DefaultScoring)
	if r.Matches != 0 {
		t.Errorf("N-vs-N matches = %d, want 0", r.Matches)
	}
}

func TestLowercaseInput(t *testing.T) {
	r := Align([]byte(strings.ToLower(bc)), []byte(bc+"TTTT"), DefaultScoring)
	if r.Identity != 1.0 {
		t.Errorf("identity = %v for lowercase barcode, want 1.0", r.Identity)
	}
}

func TestDeterminism(t *testing.T) {
	window := []byte("TTGA" + bc[:8] + "CT" + bc[8:] + "GGAT")
	a := Align([]byte(bc), window, DefaultScoring)
	b := Align([]byte(bc), window, DefaultScoring)
	if a != b {
		t.Errorf("repeated alignment differs: %+v vs %+v", a, b)
	}
}

func TestTraceShapesAgree(t *testing.T) {
	window := []byte("TT" + bc[:10] + bc[11:] + "AAGG")
	r, tr := AlignTrace([]byte(bc), window, DefaultScoring)

	if len(tr.Barcode) != r.Length || len(tr.Window) != r.Length || len(tr.Bars) != r.Length {
		t.Fatalf("trace lengths %d/%d/%d, want all %d",
			len(tr.Barcode), len(tr.Bars), len(tr.Window), r.Length)
	}
	bars := 0
	for i := 0; i < len(tr.Bars); i++ {
		if tr.Bars[i] == '|' {
			bars++
		}
	}
	if bars != r.Matches {
		t.Errorf("%d bars, want %d matches", bars, r.Matches)
	}
	if strings.Count(tr.Barcode, "-")+strings.Count(tr.Window, "-") != r.Length-countAligned(tr) {
		t.Errorf("gap accounting inconsistent in %+v", tr)
	}
}

func countAligned(tr Trace) int {
	n := 0
	for i := 0; i < len(tr.Barcode); i++ {
		if tr.Barcode[i] != '-' && tr.Window[i] != '-' {
			n++
		}
	}
	return n
}
