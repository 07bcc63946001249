package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-background/background"
	"github.com/cwbudde/algo-background/diamonds"
	"github.com/cwbudde/algo-background/internal/logging"
	"github.com/cwbudde/algo-background/priors"
	"github.com/cwbudde/algo-background/psd"
)

func newPriorsCmd(a *app) *cobra.Command {
	var (
		numax float64
		model string
		run   int
	)

	cmd := &cobra.Command{
		Use:   "priors <catalog> <star>",
		Short: "Derive prior boundaries and write the sampler configuration for a star",
		Long: `priors reads data/<catalog><star>.txt, derives uniform prior boundaries for
every free parameter of the chosen background model from the approximate numax,
and writes the hyper-parameter, sampler, Nyquist and X-means files into
results/<catalog><star>/, creating the run sub-directory for the fit output.`,
		Example: "  bgfit priors KIC 012008916 --numax 162 --model ThreeHarvey --subdir 0",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := background.ParseVariant(model)
			if err != nil {
				return err
			}
			return a.runPriors(cmd, args[0], args[1], numax, v, run)
		},
	}

	cmd.Flags().Float64Var(&numax, "numax", 0, "approximate frequency of maximum power (µHz)")
	cmd.Flags().StringVarP(&model, "model", "m", background.ThreeHarvey.String(), "background model (see 'bgfit variants')")
	cmd.Flags().IntVar(&run, "subdir", 0, "run number of the results sub-directory")
	_ = cmd.MarkFlagRequired("numax")

	return cmd
}

func (a *app) runPriors(cmd *cobra.Command, catalog, star string, numax float64, v background.Variant, run int) error {
	log := logging.Log.WithFields(logrus.Fields{"catalog": catalog, "star": star, "variant": v.String()})
	layout := a.cfg.Layout()

	s, err := psd.ReadFile(layout.PSDPath(catalog, star))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"bins": s.Len(), "nyquist": s.Nyquist()}).Debug("PSD loaded")

	opts := append(a.cfg.PriorOptions(), priors.WithLogger(log))
	res, err := priors.Synthesize(s, numax, v, opts...)
	if err != nil {
		return err
	}

	starDir := layout.StarDir(catalog, star)
	if err := a.cfg.Bundle(res, run).Write(starDir); err != nil {
		return err
	}

	name, _ := diamonds.RunName(run)
	log.WithFields(logrus.Fields{"dir": starDir, "subdir": name}).Info("sampler configuration written")

	return printBoundaries(cmd, res)
}

func printBoundaries(cmd *cobra.Command, res *priors.Result) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tParameter\tUnit\tLower\tUpper\n")
	for i, b := range res.Boundaries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.3f\t%.3f\n", i, b.Slot.Label(), b.Slot.Unit(), b.Lower, b.Upper)
	}
	return tw.Flush()
}
