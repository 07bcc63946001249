package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-background/dsp/window"
)

func newWindowsCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "windows [window-name ...]",
		Short: "Print properties of the smoothing windows",
		Long: `windows prints the coherent gain and equivalent noise bandwidth of the
smoothing windows available to 'bgfit model --window'. Without arguments all
windows are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("size must be >= 1, got %d", size)
			}

			types := window.Types()
			if len(args) > 0 {
				types = types[:0:0]
				for _, name := range args {
					t, err := window.Parse(name)
					if err != nil {
						return err
					}
					types = append(types, t)
				}
			}

			return printWindows(cmd.OutOrStdout(), types, size)
		},
	}

	cmd.Flags().IntVar(&size, "size", 101, "window length in samples")

	return cmd
}

func printWindows(w io.Writer, types []window.Type, size int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\n")

	for _, t := range types {
		gain, enbw := windowProperties(window.Generate(t, size))
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\n", t, size, gain, enbw)
	}
	return tw.Flush()
}

// windowProperties returns the coherent gain (mean coefficient) and the
// equivalent noise bandwidth N·Σw²/(Σw)² of coeffs.
func windowProperties(coeffs []float64) (gain, enbw float64) {
	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return 0, 0
	}
	n := float64(len(coeffs))
	return sum / n, n * sumSq / (sum * sum)
}
