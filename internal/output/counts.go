// internal/output/counts.go
package output

import (
	"sort"

	"github.com/rambaut/readucks/internal/demux"
)

// Counts is the per-run aggregate of calls, including "none". It is owned by
// the caller of a run; Add (or Merge) is the only mutation path, invoked
// exactly once per read after classification.
type Counts struct {
	byCall map[string]int
	total  int
}

func NewCounts() *Counts {
	return &Counts{byCall: make(map[string]int)}
}

func (c *Counts) Add(rec demux.Record) {
	c.byCall[rec.Call]++
	c.total++
}

// Merge folds another shard into c, for parallel runs that aggregate
// per-worker and combine at the end.
func (c *Counts) Merge(other *Counts) {
	for call, n := range other.byCall {
		c.byCall[call] += n
	}
	c.total += other.total
}

func (c *Counts) Total() int { return c.total }

func (c *Counts) Get(call string) int { return c.byCall[call] }

// Calls returns the distinct call values seen, sorted by name.
func (c *Counts) Calls() []string {
	calls := make([]string, 0, len(c.byCall))
	for call := range c.byCall {
		calls = append(calls, call)
	}
	sort.Strings(calls)
	return calls
}
