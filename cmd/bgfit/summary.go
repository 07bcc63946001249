package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-background/background"
	"github.com/cwbudde/algo-background/diamonds"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <catalog> <star> <subdir>",
		Short: "Print the parameter estimates of a fit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := a.cfg.Layout().Run(args[0], args[1], args[2])

			v, err := run.Variant()
			if err != nil {
				return err
			}
			est, err := run.Summary()
			if err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), v, est)
		},
	}
}

func printSummary(w io.Writer, v background.Variant, est []diamonds.Estimate) error {
	slots := v.Slots()

	fmt.Fprintf(w, "Model: %s (%d free parameters)\n\n", v, len(slots))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tParameter\tUnit\tMedian\tLower\tUpper\tMean\tMode\n")
	for i, e := range est {
		label, unit := parameterName(slots, i)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			i, label, unit, e.Median, e.LowerCredible, e.UpperCredible, e.Mean, e.Mode)
	}
	return tw.Flush()
}

// parameterName labels parameter i, falling back to its index for summaries
// that do not match the model.
func parameterName(slots []background.Slot, i int) (label, unit string) {
	if i < len(slots) {
		return slots[i].Label(), slots[i].Unit()
	}
	return "par" + strconv.Itoa(i), "-"
}
