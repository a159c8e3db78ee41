package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/file"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	"github.com/spf13/cobra"
)

func newGenCmd(_ *cli) *cobra.Command {
	var (
		length   int
		distinct int
		seed     int64
		codec    string
		out      string
	)

	cmd := &cobra.Command{
		Use:     "gen",
		Short:   "Write a random reference string to a trace file.",
		Example: `  pagesim gen --length 100 --distinct 10 --seed 1 --codec lz4 --out trace.lz4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cd, err := file.ParseCodec(codec)
			if err != nil {
				return err
			}
			seq, err := page.Random(length, distinct, seed)
			if err != nil {
				return err
			}
			if err := file.WriteTrace(out, seq, cd); err != nil {
				return err
			}
			slog.Info("trace written", "path", out, "codec", cd.String(), "references", seq.Len(), "distinct", seq.Distinct())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d references to %s (%s)\n", seq.Len(), out, cd)
			return err
		},
	}

	cmd.Flags().IntVar(&length, "length", 100, "number of references")
	cmd.Flags().IntVar(&distinct, "distinct", 10, "page ids are drawn from 0..distinct-1")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&codec, "codec", "none", "none, lz4 or snappy")
	cmd.Flags().StringVar(&out, "out", "", "output path")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
