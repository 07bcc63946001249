package priors

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures [Synthesize].
type Option func(*config)

type config struct {
	scaling          ScalingRelations
	granulationRatio float64
	rotationRatio    float64
	log              logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		scaling:          DefaultScaling(),
		granulationRatio: GranulationOverlapRatio,
		rotationRatio:    RotationOverlapRatio,
		log:              discardLogger(),
	}
}

// WithScaling replaces the scaling-relation calibration.
func WithScaling(s ScalingRelations) Option {
	return func(c *config) {
		c.scaling = s
	}
}

// WithOverlapRatios sets the de-overlap thresholds for the
// (granulation 1, granulation 2) and (long trend, granulation 1) pairs.
// Values below 1 are ignored.
func WithOverlapRatios(granulation, rotation float64) Option {
	return func(c *config) {
		if granulation >= 1 {
			c.granulationRatio = granulation
		}
		if rotation >= 1 {
			c.rotationRatio = rotation
		}
	}
}

// WithLogger routes debug output about estimates, overrides and fallbacks to
// l. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
