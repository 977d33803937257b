// internal/cli/options_test.go
package cli

import (
	"reflect"
	"testing"

	"github.com/rambaut/readucks/internal/barcodes"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(NewFlagSet("test"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func mustFail(t *testing.T, args ...string) {
	t.Helper()
	if _, err := ParseArgs(NewFlagSet("test"), args); err == nil {
		t.Fatalf("expected parse error for %v", args)
	}
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-i", "reads.fastq", "-o", "out.tsv")
	if o.Set != barcodes.Native {
		t.Errorf("default set = %v, want native", o.Set)
	}
	if o.Threshold != 90.0 || o.SecondaryThreshold != 70.0 {
		t.Errorf("default thresholds = %v/%v", o.Threshold, o.SecondaryThreshold)
	}
	if o.Verbosity != 1 || o.Window != 150 || o.Threads != 1 {
		t.Errorf("defaults wrong: %+v", o)
	}
	if o.Single {
		t.Error("double-end should be the default")
	}
}

func TestShortAndLongFlags(t *testing.T) {
	a := mustParse(t, "-i", "in", "-o", "out", "-v", "2")
	b := mustParse(t, "--input", "in", "--output", "out", "--verbosity", "2")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("short and long forms disagree: %+v vs %+v", a, b)
	}
}

func TestCatalogSelection(t *testing.T) {
	if o := mustParse(t, "-i", "in", "-o", "out", "--pcr_barcodes"); o.Set != barcodes.PCR {
		t.Errorf("set = %v, want pcr", o.Set)
	}
	if o := mustParse(t, "-i", "in", "-o", "out", "--rapid_barcodes"); o.Set != barcodes.Rapid {
		t.Errorf("set = %v, want rapid", o.Set)
	}
	mustFail(t, "-i", "in", "-o", "out", "--native_barcodes", "--pcr_barcodes")
}

func TestLimitBarcodes(t *testing.T) {
	o := mustParse(t, "-i", "in", "-o", "out", "--limit_barcodes_to", "1,2,3")
	if len(o.LimitBarcodesTo) != 3 || o.LimitBarcodesTo[2] != 3 {
		t.Errorf("limit = %v", o.LimitBarcodesTo)
	}
}

func TestSingleConflictsWithSecondaryThreshold(t *testing.T) {
	mustFail(t, "-i", "in", "-o", "out", "--single", "--secondary_threshold", "80")
	// --single alone is fine; the secondary default just goes unused.
	if o := mustParse(t, "-i", "in", "-o", "out", "--single"); !o.Single {
		t.Error("--single not set")
	}
}

func TestFractionThresholdRejected(t *testing.T) {
	mustFail(t, "-i", "in", "-o", "out", "--threshold", "0.9")
	mustFail(t, "-i", "in", "-o", "out", "--secondary_threshold", "0.7")
	mustFail(t, "-i", "in", "-o", "out", "--threshold", "120")
	if o := mustParse(t, "-i", "in", "-o", "out", "--threshold", "85.5"); o.Threshold != 85.5 {
		t.Errorf("threshold = %v", o.Threshold)
	}
}

func TestRequiredFlags(t *testing.T) {
	mustFail(t, "-o", "out")
	mustFail(t, "-i", "in")
	mustFail(t, "-i", "in", "-o", "out", "-v", "7")
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("test"), []string{"--version"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !o.Version {
		t.Error("version flag not set")
	}
}
