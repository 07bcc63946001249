package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-background/background"
)

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <catalog> <star> <subdir> <parameter>",
		Short: "Summarise the nested-sampling evolution of one parameter",
		Long: `trace reads the sampling trace of a free parameter (0-based index) and
prints the number of nested iterations, the range explored and the final
value.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[3])
			if err != nil || i < 0 {
				return fmt.Errorf("parameter index must be a non-negative integer: %q", args[3])
			}

			run := a.cfg.Layout().Run(args[0], args[1], args[2])
			samples, err := run.Samples(i)
			if err != nil {
				return err
			}

			var slots []background.Slot
			if v, err := run.Variant(); err == nil {
				slots = v.Slots()
			}
			label, unit := parameterName(slots, i)

			lo, hi := samples[0], samples[0]
			for _, x := range samples[1:] {
				lo = min(lo, x)
				hi = max(hi, x)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Parameter %02d: %s [%s]\n", i, label, unit)
			fmt.Fprintf(w, "Iterations: %d\n", len(samples))
			fmt.Fprintf(w, "Range:      %.4f .. %.4f\n", lo, hi)
			fmt.Fprintf(w, "Last:       %.4f\n", samples[len(samples)-1])
			return nil
		},
	}
}
