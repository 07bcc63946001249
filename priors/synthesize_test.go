package priors

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-background/background"
	"github.com/cwbudde/algo-background/dsp/smooth"
	"github.com/cwbudde/algo-background/internal/testutil"
	"github.com/cwbudde/algo-background/psd"
)

func kicSeries(t testing.TB) psd.Series {
	t.Helper()
	freq := testutil.FrequencyGrid(testutil.KeplerBin, testutil.KeplerBin*10, 3500)
	s, err := psd.New(freq, testutil.KIC012008916().PSD(freq))
	require.NoError(t, err)
	return s
}

func flatSeries(t testing.TB, start, step float64, n int, level float64) psd.Series {
	t.Helper()
	freq := testutil.FrequencyGrid(start, step, n)
	s, err := psd.New(freq, testutil.DC(level, n))
	require.NoError(t, err)
	return s
}

func TestSynthesizeRedGiant(t *testing.T) {
	s := kicSeries(t)

	res, err := Synthesize(s, 162, background.ThreeHarvey)
	require.NoError(t, err)

	b := res.Boundaries
	require.Len(t, b, 10)
	require.Equal(t, background.ThreeHarvey.Slots(), slotsOf(b))
	for _, x := range b {
		require.Less(t, x.Lower, x.Upper, x.Slot.String())
		require.False(t, math.IsNaN(x.Lower) || math.IsNaN(x.Upper), x.Slot.String())
	}

	get := func(slot background.Slot) Boundary {
		for _, x := range b {
			if x.Slot == slot {
				return x
			}
		}
		t.Fatalf("slot %s missing", slot)
		return Boundary{}
	}

	// Long-trend and granulation frequency ranges are contiguous.
	require.Equal(t, get(background.SlotLongFrequency).Upper, get(background.SlotGranulation1Frequency).Lower)
	require.Equal(t, get(background.SlotGranulation1Frequency).Upper, get(background.SlotGranulation2Frequency).Lower)
	require.Equal(t, s.MinFreq(), get(background.SlotLongFrequency).Lower)

	nm := get(background.SlotNumax)
	require.InDelta(t, 145.8, nm.Lower, 1e-9)
	require.InDelta(t, 178.2, nm.Upper, 1e-9)

	dnu := LargeSeparation(162)
	require.InDelta(t, 12.76, dnu, 0.01)
	require.Equal(t, dnu, res.Estimates.DeltaNu)
	require.InDelta(t, 2*dnu, res.Estimates.Sigma, 1e-12)

	require.Equal(t, 0.0, get(background.SlotLongAmplitude).Lower)
	require.Equal(t, s.Nyquist(), res.Nyquist)

	// Excess height sits between the background floor and the injected
	// Gaussian on top of it.
	require.Greater(t, res.Estimates.Height, 100.0)
	require.Less(t, res.Estimates.Height, 1000.0)
}

func TestSynthesizeIdempotentOverlap(t *testing.T) {
	s := kicSeries(t)

	for _, v := range []background.Variant{background.TwoHarvey, background.ThreeHarvey, background.ThreeHarveyColor} {
		res, err := Synthesize(s, 162, v)
		require.NoError(t, err, v.String())

		r := res.Ranges
		g1, g2 := ResolveOverlap(r[background.SlotGranulation1Frequency], r[background.SlotGranulation2Frequency], GranulationOverlapRatio)
		require.Equal(t, r[background.SlotGranulation1Frequency], g1, v.String())
		require.Equal(t, r[background.SlotGranulation2Frequency], g2, v.String())

		if v.Has(background.ComponentLongTrend) {
			rot, g1 := ResolveOverlap(r[background.SlotLongFrequency], r[background.SlotGranulation1Frequency], RotationOverlapRatio)
			require.Equal(t, r[background.SlotLongFrequency], rot, v.String())
			require.Equal(t, r[background.SlotGranulation1Frequency], g1, v.String())
		}
	}
}

func TestSynthesizeFlatWhiteNoise(t *testing.T) {
	const p0 = 7.5
	s := flatSeries(t, 1, 0.1, 3000, p0)

	res, err := Synthesize(s, 100, background.FlatNoGaussian)
	require.NoError(t, err)

	require.Equal(t, p0, res.Estimates.White)
	require.Equal(t, Boundaries{{Slot: background.SlotWhite, Lower: 3.75, Upper: 11.25}}, res.Boundaries)
}

func TestSynthesizeAllVariants(t *testing.T) {
	s := kicSeries(t)

	for _, v := range background.Variants() {
		t.Run(v.String(), func(t *testing.T) {
			res, err := Synthesize(s, 162, v)
			require.NoError(t, err)
			require.Len(t, res.Boundaries, v.NumParams())
			for _, x := range res.Boundaries {
				require.Less(t, x.Lower, x.Upper, x.Slot.String())
			}
		})
	}
}

func TestSynthesizeWithoutLongTrend(t *testing.T) {
	s := kicSeries(t)

	for _, v := range []background.Variant{background.OneHarvey, background.TwoHarveyNoGaussian, background.OneHarveyColor} {
		res, err := Synthesize(s, 162, v)
		require.NoError(t, err)
		require.Equal(t, s.MinFreq(), res.Ranges[background.SlotGranulation1Frequency].Lower, v.String())
	}

	// Without granulation 2 the granulation-1 upper bound keeps its scaling
	// value.
	res, err := Synthesize(s, 162, background.OneHarvey)
	require.NoError(t, err)
	nu1 := DefaultScaling().Granulation1Frequency(162)
	require.Equal(t, harveyFreqUpper*nu1, res.Ranges[background.SlotGranulation1Frequency].Upper)
}

func TestSynthesizeWhiteNoiseCutoff(t *testing.T) {
	t.Run("short baseline", func(t *testing.T) {
		// Nyquist 280.9 µHz, numax 250: noise is measured above 200 µHz.
		freq := testutil.FrequencyGrid(1, 0.1, 2800)
		s, err := psd.New(freq, testutil.StepPSD(freq, 240, 6, 2))
		require.NoError(t, err)

		res, err := Synthesize(s, 250, background.FlatNoGaussian)
		require.NoError(t, err)

		want, ok := psd.Mean(s.Power(), s.Above(200))
		require.True(t, ok)
		require.Equal(t, want, res.Estimates.White)
		require.Greater(t, res.Estimates.White, 2.0)
	})

	t.Run("long baseline", func(t *testing.T) {
		freq := testutil.FrequencyGrid(1, 0.1, 4000)
		s, err := psd.New(freq, testutil.StepPSD(freq, 240, 6, 2))
		require.NoError(t, err)

		res, err := Synthesize(s, 250, background.FlatNoGaussian)
		require.NoError(t, err)
		require.Equal(t, 2.0, res.Estimates.White)
	})

	t.Run("fallback to numax", func(t *testing.T) {
		// numax+2Δν lies beyond the last bin.
		freq := testutil.FrequencyGrid(1, 0.1, 3100)
		s, err := psd.New(freq, testutil.StepPSD(freq, 280, 6, 2))
		require.NoError(t, err)

		res, err := Synthesize(s, 290, background.FlatNoGaussian)
		require.NoError(t, err)
		require.Equal(t, 2.0, res.Estimates.White)
	})

	t.Run("empty", func(t *testing.T) {
		s := flatSeries(t, 1, 0.1, 3100, 1)

		_, err := Synthesize(s, 400, background.FlatNoGaussian)
		require.ErrorIs(t, err, ErrEmptyRegion)
	})
}

func TestSynthesizeGranulationAmplitude(t *testing.T) {
	const numax = 162
	sc := DefaultScaling()
	nu1 := sc.Granulation1Frequency(numax)
	scaled := sc.GranulationAmplitude(numax)

	t.Run("scaling dominates", func(t *testing.T) {
		s := flatSeries(t, 0.1, 0.1, 3000, 1e-3)

		res, err := Synthesize(s, numax, background.TwoHarvey)
		require.NoError(t, err)
		require.Equal(t, scaled, res.Estimates.Granulation1.Amplitude)
	})

	t.Run("data dominates", func(t *testing.T) {
		s := flatSeries(t, 0.1, 0.1, 3000, 1e4)

		res, err := Synthesize(s, numax, background.TwoHarvey)
		require.NoError(t, err)

		a1 := HarveyAmplitude(1e4, nu1)
		require.Greater(t, a1, scaled)
		require.Equal(t, a1, res.Estimates.Granulation1.Amplitude)
		require.Equal(t, Range{gran1AmpLower * a1, gran1AmpUpper * a1}, res.Ranges[background.SlotGranulation1Amplitude])
		require.Equal(t, Range{gran2AmpLower * a1, gran2AmpUpper * a1}, res.Ranges[background.SlotGranulation2Amplitude])
	})
}

func TestHarveyAmplitude(t *testing.T) {
	testutil.RequireRelNearlyEqual(t, HarveyAmplitude(8/(math.Pi*math.Pi), 1), 1, 1e-12)

	// Amplitude scales with the square root of power and of frequency.
	a := HarveyAmplitude(30, 44)
	testutil.RequireRelNearlyEqual(t, HarveyAmplitude(120, 44), 2*a, 1e-12)
	testutil.RequireRelNearlyEqual(t, HarveyAmplitude(30, 176), 2*a, 1e-12)
}

func TestSynthesizeInvalidInput(t *testing.T) {
	s := kicSeries(t)

	_, err := Synthesize(s, 162, background.Variant(0))
	require.ErrorIs(t, err, background.ErrUnknownVariant)

	_, err = Synthesize(s, 162, background.Variant(99))
	require.ErrorIs(t, err, background.ErrUnknownVariant)

	for _, numax := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := Synthesize(s, numax, background.ThreeHarvey)
		require.ErrorIs(t, err, ErrInvalidNumax, "numax %v", numax)
	}

	_, err = Synthesize(psd.Series{}, 162, background.ThreeHarvey)
	require.ErrorIs(t, err, psd.ErrEmpty)
}

func TestSynthesizeSmoothingFailure(t *testing.T) {
	// Δν(162) spans about 161 bins of 0.0791 µHz; 100 samples cannot hold
	// the smoothing window.
	s := flatSeries(t, 150, 0.0791, 100, 1)

	_, err := Synthesize(s, 162, background.Flat)
	require.ErrorIs(t, err, smooth.ErrWindowTooLong)
	require.Contains(t, err.Error(), "smoothing PSD")
}

func TestSynthesizeOptions(t *testing.T) {
	s := kicSeries(t)

	base, err := Synthesize(s, 162, background.ThreeHarvey)
	require.NoError(t, err)

	// Ratios below 1 are ignored.
	same, err := Synthesize(s, 162, background.ThreeHarvey, WithOverlapRatios(0.5, -1), nil)
	require.NoError(t, err)
	require.Equal(t, base.Boundaries, same.Boundaries)

	custom := DefaultScaling()
	custom.DeltaNuCoeff *= 2
	scaled, err := Synthesize(s, 162, background.ThreeHarvey, WithScaling(custom))
	require.NoError(t, err)
	require.InDelta(t, 2*base.Estimates.DeltaNu, scaled.Estimates.DeltaNu, 1e-9)
	require.InDelta(t, 2*base.Estimates.Sigma, scaled.Estimates.Sigma, 1e-9)
}

func TestSynthesizeLogsDebug(t *testing.T) {
	s := kicSeries(t)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := Synthesize(s, 162, background.ThreeHarvey, WithLogger(logger))
	require.NoError(t, err)

	var messages []string
	for _, e := range hook.AllEntries() {
		require.Equal(t, logrus.DebugLevel, e.Level)
		require.Equal(t, "ThreeHarvey", e.Data["variant"])
		messages = append(messages, e.Message)
	}
	require.Contains(t, messages, "white noise")
	require.Contains(t, messages, "long-trend ranges resolved")
}

func TestAssemble(t *testing.T) {
	ranges := Ranges{
		background.SlotWhite:                 {1, 2},
		background.SlotGranulation1Amplitude: {3, 4},
		background.SlotGranulation1Frequency: {5, 6},
		background.SlotSigma:                 {7, 8},
	}

	b, err := Assemble(background.OneHarveyNoGaussian, ranges)
	require.NoError(t, err)
	require.Equal(t, [][2]float64{{1, 2}, {3, 4}, {5, 6}}, b.Pairs())

	_, err = Assemble(background.Variant(0), ranges)
	require.ErrorIs(t, err, background.ErrUnknownVariant)

	_, err = Assemble(background.OneHarvey, ranges)
	require.ErrorIs(t, err, ErrMissingRange)

	ranges[background.SlotGranulation1Frequency] = Range{6, 6}
	_, err = Assemble(background.OneHarveyNoGaussian, ranges)
	require.ErrorIs(t, err, ErrDegenerateBoundary)
}

func TestScalingRelations(t *testing.T) {
	sc := DefaultScaling()

	testutil.RequireRelNearlyEqual(t, sc.DeltaNu(100), 0.267*math.Pow(100, 0.76), 1e-15)
	testutil.RequireRelNearlyEqual(t, sc.Granulation1Frequency(162), 44.09, 1e-3)
	testutil.RequireRelNearlyEqual(t, sc.Granulation2Frequency(162), 147.4, 2e-3)
	testutil.RequireRelNearlyEqual(t, sc.GranulationAmplitude(162), 152.7, 2e-3)
}

func slotsOf(b Boundaries) []background.Slot {
	out := make([]background.Slot, len(b))
	for i, x := range b {
		out[i] = x.Slot
	}
	return out
}

func BenchmarkSynthesize(b *testing.B) {
	s := kicSeries(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Synthesize(s, 162, background.ThreeHarveyColor); err != nil {
			b.Fatal(err)
		}
	}
}
