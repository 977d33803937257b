// internal/barcodes/set.go
package barcodes

import (
	"fmt"
	"sort"
)

// Set identifies one of the fixed barcode catalogs.
type Set int

const (
	Native Set = iota // 24 native barcoding kit barcodes (default)
	PCR               // 96 PCR barcoding kit barcodes
	Rapid             // 12 rapid barcoding kit barcodes
)

func (s Set) String() string {
	switch s {
	case Native:
		return "native"
	case PCR:
		return "pcr"
	case Rapid:
		return "rapid"
	}
	return fmt.Sprintf("Set(%d)", int(s))
}

// ParseSet maps a catalog name to its Set. Unknown names are rejected here,
// at parse time, so no later code path ever sees an unmapped set.
func ParseSet(name string) (Set, error) {
	switch name {
	case "native":
		return Native, nil
	case "pcr":
		return PCR, nil
	case "rapid":
		return Rapid, nil
	}
	return 0, fmt.Errorf("unrecognised barcode set %q (want native, pcr or rapid)", name)
}

// Definition is one catalog entry. Values are immutable once loaded.
type Definition struct {
	ID   int
	Name string
	Seq  string
	Set  Set
}

// Catalog returns the fixed ordered table for a set. Callers must not
// mutate the returned slice.
func (s Set) Catalog() []Definition {
	switch s {
	case PCR:
		return pcrBarcodes
	case Rapid:
		return rapidBarcodes
	default:
		return nativeBarcodes
	}
}

// Restrict returns the sub-catalog whose ids appear in ids, preserving
// catalog order. An empty ids list means no restriction. Ids that do not
// exist in the catalog are an error rather than being silently dropped.
func Restrict(cat []Definition, ids []int) ([]Definition, error) {
	if len(ids) == 0 {
		return cat, nil
	}
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]Definition, 0, len(ids))
	for _, d := range cat {
		if want[d.ID] {
			out = append(out, d)
			delete(want, d.ID)
		}
	}
	if len(want) > 0 {
		missing := make([]int, 0, len(want))
		for id := range want {
			missing = append(missing, id)
		}
		sort.Ints(missing)
		set := "selected"
		if len(cat) > 0 {
			set = cat[0].Set.String()
		}
		return nil, fmt.Errorf("barcode id(s) %v not in the %s set", missing, set)
	}
	return out, nil
}
