package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-background/background"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the background model variants and their free parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Model\tParams\tFree parameters\n")
			for _, v := range background.Variants() {
				slots := v.Slots()
				labels := make([]string, len(slots))
				for i, s := range slots {
					labels[i] = s.Label()
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\n", v, len(slots), strings.Join(labels, ", "))
			}
			return tw.Flush()
		},
	}
}
