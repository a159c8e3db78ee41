package cmd

import (
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	"github.com/spf13/cobra"
)

func newAnomalyCmd(c *cli) *cobra.Command {
	var (
		input   sequenceInput
		smaller int
		larger  int
		scan    int
	)

	cmd := &cobra.Command{
		Use:   "anomaly [pages...]",
		Short: "Check whether FIFO faults more with more frames (Belady's Anomaly).",
		Example: `  pagesim anomaly --smaller 3 --larger 4 --pages "1 2 3 4 1 2 5 1 2 3 4 5"
  pagesim anomaly --scan 8 --trace trace.lz4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("smaller") {
				smaller = c.opts.AnomalySmaller
			}
			if !cmd.Flags().Changed("larger") {
				larger = c.opts.AnomalyLarger
			}

			seq, err := input.load(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("scan") {
				found, err := buffer.ScanAnomalies(seq, scan)
				if err != nil {
					return err
				}
				if len(found) == 0 {
					_, err := fmt.Fprintf(out, "Belady's Anomaly: not observed for 0..%d frames\n", scan)
					return err
				}
				for i := range found {
					if i > 0 {
						fmt.Fprintln(out)
					}
					if err := report.WriteAnomaly(out, &found[i]); err != nil {
						return err
					}
				}
				return nil
			}

			r, err := buffer.DetectAnomaly(seq, smaller, larger)
			if err != nil {
				return err
			}
			return report.WriteAnomaly(out, r)
		},
	}

	input.register(cmd)
	cmd.Flags().IntVar(&smaller, "smaller", 0, "smaller frame count")
	cmd.Flags().IntVar(&larger, "larger", 0, "larger frame count")
	cmd.Flags().IntVar(&scan, "scan", 0, "check every adjacent pair of frame counts up to this one")
	return cmd
}
