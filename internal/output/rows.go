// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rambaut/readucks/internal/align"
	"github.com/rambaut/readucks/internal/demux"
)

// TSVHeader is the canonical header row of the per-read report. Keep this
// as the single source of truth; writers and tests both use it.
const TSVHeader = "name\tbarcode\t" +
	"primary_barcode\tprimary_is_start\tprimary_score\tprimary_identity\tprimary_matches\tprimary_length\t" +
	"secondary_barcode\tsecondary_is_start\tsecondary_score\tsecondary_identity\tsecondary_matches\tsecondary_length"

func formatEnd(r align.Result) string {
	return fmt.Sprintf("%s\t%s\t%d\t%s\t%d\t%d",
		r.Name, strconv.FormatBool(r.IsStart), r.Score,
		strconv.FormatFloat(r.Identity, 'f', -1, 64), r.Matches, r.Length)
}

// FormatRow returns one report row (no trailing newline). Each end reports
// its own orientation in its _is_start column.
func FormatRow(rec demux.Record) string {
	var b strings.Builder
	b.WriteString(rec.Name)
	b.WriteByte('\t')
	b.WriteString(rec.Call)
	b.WriteByte('\t')
	b.WriteString(formatEnd(rec.Primary))
	b.WriteByte('\t')
	b.WriteString(formatEnd(rec.Secondary))
	return b.String()
}
