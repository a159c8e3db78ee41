// Package report renders simulation results as aligned text tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight|tabwriter.Debug)
}

// WriteTable prints one row per result.
func WriteTable(w io.Writer, results []*buffer.Result) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Policy\tCapacity\tFaults\tHits\tHit ratio\t")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2f%%\t\n",
			res.Policy, res.Capacity, res.Faults, res.Hits, res.HitRatio)
	}
	return tw.Flush()
}

// WriteSteps prints the per-reference trace of a result recorded with steps.
func WriteSteps(w io.Writer, res *buffer.Result) error {
	fmt.Fprintf(w, "%s, %d frames\n", res.Policy, res.Capacity)
	tw := newTable(w)
	fmt.Fprintln(tw, "Pos\tPage\tResult\tEvicted\t")
	for _, step := range res.Steps {
		result, evicted := "fault", "-"
		if step.Hit {
			result = "hit"
		}
		if step.Evicted {
			evicted = fmt.Sprint(step.Victim)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t\n", step.Pos, step.Page, result, evicted)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "resident: %s\n", formatPages(res.Resident))
	return err
}

func WriteAnomaly(w io.Writer, r *buffer.AnomalyReport) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Frames\tFIFO faults\t")
	fmt.Fprintf(tw, "%d\t%d\t\n", r.Smaller, r.SmallerFaults)
	fmt.Fprintf(tw, "%d\t%d\t\n", r.Larger, r.LargerFaults)
	if err := tw.Flush(); err != nil {
		return err
	}

	verdict := "not observed"
	if r.Observed {
		verdict = "observed"
	}
	_, err := fmt.Fprintf(w, "Belady's Anomaly: %s\n", verdict)
	return err
}

// WriteCurve prints faults per capacity; index i of curve is capacity i.
func WriteCurve(w io.Writer, policy buffer.Policy, curve []int) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Frames\t%s faults\t\n", policy)
	for c, faults := range curve {
		fmt.Fprintf(tw, "%d\t%d\t\n", c, faults)
	}
	return tw.Flush()
}

func formatPages(ids []util.PageID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
