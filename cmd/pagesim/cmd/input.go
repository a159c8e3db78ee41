package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/file"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/spf13/cobra"
)

// sequenceInput is the set of flags every simulating command accepts.
type sequenceInput struct {
	pages string
	trace string
	count int
}

func (in *sequenceInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.pages, "pages", "", "page references, separated by spaces or commas")
	cmd.Flags().StringVar(&in.trace, "trace", "", "trace file (plain, lz4 or snappy)")
	cmd.Flags().IntVar(&in.count, "count", -1, "declared number of references; checked against the input")
}

// load reads the sequence from --pages, --trace or positional arguments.
func (in *sequenceInput) load(args []string) (page.Sequence, error) {
	sources := 0
	for _, set := range []bool{in.pages != "", in.trace != "", len(args) > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return page.Sequence{}, errors.New("give the references with exactly one of --pages, --trace or arguments")
	}

	var values []util.PageID
	var err error
	switch {
	case in.trace != "":
		var seq page.Sequence
		seq, err = file.ReadTrace(in.trace)
		if err == nil {
			values = seq.Pages()
		}
	case in.pages != "":
		values, err = page.ParseString(in.pages)
	default:
		values, err = page.ParseString(strings.Join(args, " "))
	}
	if err != nil {
		return page.Sequence{}, err
	}

	seq, err := page.FromValues(in.count, values)
	if err != nil {
		return page.Sequence{}, fmt.Errorf("%w (use --count %d or fix the input)", err, len(values))
	}
	slog.Debug("sequence loaded", "references", seq.Len(), "distinct", seq.Distinct(), "trace", in.trace)
	return seq, nil
}
