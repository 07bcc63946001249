package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-background/background"
	"github.com/cwbudde/algo-background/dsp/window"
	"github.com/cwbudde/algo-background/internal/logging"
	"github.com/cwbudde/algo-background/priors"
	"github.com/cwbudde/algo-background/psd"
)

var errNoNumax = errors.New("model has no Gaussian envelope; pass --numax to size the smoothing window")

var modelColumns = []string{"freq", "psd", "smoothed", "b1", "b2", "long", "gran1", "gran2", "excess", "white", "color"}

func newModelCmd(a *app) *cobra.Command {
	var (
		params     []float64
		out        string
		windowName string
		numax      float64
	)

	cmd := &cobra.Command{
		Use:   "model <catalog> <star> <subdir>",
		Short: "Evaluate the fitted background model on the star's frequency grid",
		Long: `model evaluates the background model of a fit on the PSD frequencies and writes
a tab separated table with the PSD, the PSD smoothed over half a large
separation, both background totals and every component. Parameters default to
the posterior medians of the fit; --params overrides them.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			wt, err := window.Parse(windowName)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if err := a.runModel(w, args[0], args[1], args[2], params, wt, numax); err != nil {
				return err
			}
			if out != "" {
				logging.Log.WithField("file", out).Info("model written")
			}
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&params, "params", nil, "comma separated parameter vector (default: fitted medians)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&windowName, "window", window.TypeFlat.String(), "smoothing window: flat, hanning, hamming, bartlett or blackman")
	cmd.Flags().Float64Var(&numax, "numax", 0, "numax (µHz) for the smoothing width of models without a Gaussian envelope")

	return cmd
}

func (a *app) runModel(w io.Writer, catalog, star, subdir string, vec []float64, wt window.Type, numax float64) error {
	layout := a.cfg.Layout()
	run := layout.Run(catalog, star, subdir)

	v, err := run.Variant()
	if err != nil {
		return err
	}

	var p background.Params
	if len(vec) > 0 {
		p, err = background.Unpack(v, vec)
	} else {
		p, err = run.BestFit()
	}
	if err != nil {
		return err
	}

	s, err := psd.ReadFile(layout.PSDPath(catalog, star))
	if err != nil {
		return err
	}

	if v.Has(background.ComponentExcess) {
		numax = p.Excess.Numax
	}
	if !(numax > 0) {
		return errNoNumax
	}

	wl := int(priors.LargeSeparation(numax) / 2 / s.BinWidth())
	if wl%2 == 0 {
		wl++
	}
	smoothed, err := s.Smoothed(wl, wt)
	if err != nil {
		return err
	}

	c, err := background.EvaluateParams(p, s.Freq(), a.cfg.ModelOptions()...)
	if err != nil {
		return err
	}

	logging.Log.WithFields(logrus.Fields{
		"catalog": catalog, "star": star, "variant": v.String(), "smoothing_bins": wl,
	}).Debug("model evaluated")

	return writeModel(w, s, smoothed, c)
}

func writeModel(w io.Writer, s psd.Series, smoothed []float64, c background.Components) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("#")
	for i, col := range modelColumns {
		if i > 0 {
			bw.WriteByte('\t')
		} else {
			bw.WriteByte(' ')
		}
		bw.WriteString(col)
	}
	bw.WriteByte('\n')

	columns := [][]float64{
		s.Freq(), s.Power(), smoothed,
		c.BackgroundNoExcess, c.BackgroundWithExcess,
		c.LongTrend, c.Granulation1, c.Granulation2, c.Excess, c.White, c.Color,
	}

	buf := make([]byte, 0, 32)
	for i := 0; i < s.Len(); i++ {
		for j, col := range columns {
			if j > 0 {
				bw.WriteByte('\t')
			}
			buf = strconv.AppendFloat(buf[:0], col[i], 'g', 8, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}
