package cmd

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	"github.com/spf13/cobra"
)

func newRunCmd(c *cli) *cobra.Command {
	var (
		input    sequenceInput
		policies []string
		capacity int
		steps    bool
	)

	cmd := &cobra.Command{
		Use:   "run [pages...]",
		Short: "Replay a reference string under one or more policies.",
		Example: `  pagesim run --capacity 4 --pages "3 1 4 1 5 9 2 6 5 3 5 8 9 7 9"
  pagesim run --policy lru --policy clock --trace trace.lz4 --steps`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("policy") {
				policies = c.opts.Policies
			}
			if !cmd.Flags().Changed("capacity") {
				capacity = c.opts.Capacity
			}
			if !cmd.Flags().Changed("steps") {
				steps = c.opts.TraceSteps
			}

			selected, err := buffer.ParsePolicies(policies)
			if err != nil {
				return err
			}
			seq, err := input.load(args)
			if err != nil {
				return err
			}

			results, err := buffer.Compare(seq, capacity, selected, buffer.WithSteps(steps))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.WriteTable(out, results); err != nil {
				return err
			}
			if steps {
				for _, res := range results {
					if _, err := out.Write([]byte("\n")); err != nil {
						return err
					}
					if err := report.WriteSteps(out, res); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().StringSliceVar(&policies, "policy", nil, "fifo, lru, optimal, clock or all (repeatable)")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "number of frames")
	cmd.Flags().BoolVar(&steps, "steps", false, "print every reference and eviction")
	return cmd
}
