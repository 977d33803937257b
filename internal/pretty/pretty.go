// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"github.com/rambaut/readucks/internal/align"
	"github.com/rambaut/readucks/internal/barcodes"
	"github.com/rambaut/readucks/internal/demux"
)

const linePrefix = "# "

// RenderRecord prints a human-readable block for one classified read: the
// call, then the gapped barcode-vs-window alignment for the primary and
// secondary ends. Purely presentational; requires the record to carry its
// windows (Options.NeedWindows).
func RenderRecord(rec demux.Record, cat []barcodes.Definition, sc align.Scoring) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s: %s\n", linePrefix, rec.Name, rec.Call)
	if rec.Head == nil && rec.Tail == nil {
		fmt.Fprintf(&b, "%s(alignment view not available: windows not kept)\n\n", linePrefix)
		return b.String()
	}
	renderEnd(&b, "primary", rec.Primary, rec, cat, sc)
	renderEnd(&b, "secondary", rec.Secondary, rec, cat, sc)
	b.WriteByte('\n')
	return b.String()
}

func renderEnd(b *strings.Builder, label string, r align.Result, rec demux.Record, cat []barcodes.Definition, sc align.Scoring) {
	end := "end"
	window := rec.Tail
	if r.IsStart {
		end = "start"
		window = rec.Head
	}
	fmt.Fprintf(b, "%s%s %s (%s) score=%d identity=%.3f matches=%d length=%d offset=%d\n",
		linePrefix, label, r.Name, end, r.Score, r.Identity, r.Matches, r.Length, r.Offset)

	seq := barcodeSeq(cat, r.BarcodeID)
	if seq == "" || len(window) == 0 {
		return
	}
	_, tr := align.AlignTrace([]byte(seq), window, sc)
	if tr.Barcode == "" {
		return
	}
	fmt.Fprintf(b, "%s  barcode %s\n", linePrefix, tr.Barcode)
	fmt.Fprintf(b, "%s          %s\n", linePrefix, tr.Bars)
	fmt.Fprintf(b, "%s  read    %s\n", linePrefix, tr.Window)
}

func barcodeSeq(cat []barcodes.Definition, id int) string {
	for _, d := range cat {
		if d.ID == id {
			return d.Seq
		}
	}
	return ""
}
