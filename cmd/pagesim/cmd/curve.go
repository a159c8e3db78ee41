package cmd

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	"github.com/spf13/cobra"
)

func newCurveCmd(c *cli) *cobra.Command {
	var (
		input       sequenceInput
		policy      string
		maxCapacity int
	)

	cmd := &cobra.Command{
		Use:     "curve [pages...]",
		Short:   "Print fault counts for every frame count from 0 up to a maximum.",
		Example: `  pagesim curve --policy fifo --max-capacity 8 --pages "1 2 3 4 1 2 5 1 2 3 4 5"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-capacity") {
				maxCapacity = c.opts.Capacity
			}
			p, err := buffer.ParsePolicy(policy)
			if err != nil {
				return err
			}
			seq, err := input.load(args)
			if err != nil {
				return err
			}
			curve, err := buffer.FaultCurve(p, seq, maxCapacity)
			if err != nil {
				return err
			}
			return report.WriteCurve(cmd.OutOrStdout(), p, curve)
		},
	}

	input.register(cmd)
	cmd.Flags().StringVar(&policy, "policy", "fifo", "fifo, lru, optimal or clock")
	cmd.Flags().IntVar(&maxCapacity, "max-capacity", 0, "largest frame count to simulate")
	return cmd
}
