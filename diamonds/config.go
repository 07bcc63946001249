package diamonds

import (
	"fmt"
	"math"
)

// SamplerConfig holds the multi-ellipsoid nested sampler settings, in the
// order the sampler reads them.
type SamplerConfig struct {
	InitialLivePoints            int     // initial number of active points
	MinLivePoints                int     // lower limit while the live points shrink
	MaxDrawAttempts              int     // attempts to draw a point above the likelihood constraint
	IterationsWithoutClustering  int     // first iterations assume a single cluster
	IterationsWithSameClustering int     // clustering runs every this many iterations
	InitialEnlargementFraction   float64 // ellipsoid axis enlargement, >= 0
	ShrinkingRate                float64 // in [0, 1]
	TerminationFactor            float64 // stop when the remaining evidence falls below this
}

// DefaultSamplerConfig returns the settings used for background fits.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		InitialLivePoints:            500,
		MinLivePoints:                500,
		MaxDrawAttempts:              50000,
		IterationsWithoutClustering:  1000,
		IterationsWithSameClustering: 50,
		InitialEnlargementFraction:   1.5363,
		ShrinkingRate:                0.0,
		TerminationFactor:            1.0,
	}
}

// Values returns the settings in file order.
func (c SamplerConfig) Values() []float64 {
	return []float64{
		float64(c.InitialLivePoints),
		float64(c.MinLivePoints),
		float64(c.MaxDrawAttempts),
		float64(c.IterationsWithoutClustering),
		float64(c.IterationsWithSameClustering),
		c.InitialEnlargementFraction,
		c.ShrinkingRate,
		c.TerminationFactor,
	}
}

// Validate reports settings the sampler would reject or loop forever on.
func (c SamplerConfig) Validate() error {
	switch {
	case c.InitialLivePoints <= 0 || c.MinLivePoints <= 0:
		return fmt.Errorf("%w: live points must be > 0", ErrInvalidBundle)
	case c.MinLivePoints > c.InitialLivePoints:
		return fmt.Errorf("%w: min live points %d above initial %d", ErrInvalidBundle, c.MinLivePoints, c.InitialLivePoints)
	case c.MaxDrawAttempts <= 0:
		return fmt.Errorf("%w: max draw attempts must be > 0", ErrInvalidBundle)
	case c.IterationsWithoutClustering < 0 || c.IterationsWithSameClustering <= 0:
		return fmt.Errorf("%w: clustering iteration counts", ErrInvalidBundle)
	case !(c.InitialEnlargementFraction >= 0) || math.IsInf(c.InitialEnlargementFraction, 0):
		return fmt.Errorf("%w: enlargement fraction %v", ErrInvalidBundle, c.InitialEnlargementFraction)
	case !(c.ShrinkingRate >= 0 && c.ShrinkingRate <= 1):
		return fmt.Errorf("%w: shrinking rate %v outside [0, 1]", ErrInvalidBundle, c.ShrinkingRate)
	case !(c.TerminationFactor > 0) || math.IsInf(c.TerminationFactor, 0):
		return fmt.Errorf("%w: termination factor %v", ErrInvalidBundle, c.TerminationFactor)
	}
	return nil
}

// ClusteringConfig bounds the number of clusters X-means may find.
type ClusteringConfig struct {
	MinClusters int
	MaxClusters int
}

// DefaultClusteringConfig returns the X-means bounds used for background
// fits.
func DefaultClusteringConfig() ClusteringConfig {
	return ClusteringConfig{MinClusters: 3, MaxClusters: 6}
}

// Validate checks 1 <= MinClusters <= MaxClusters.
func (c ClusteringConfig) Validate() error {
	if c.MinClusters < 1 || c.MaxClusters < c.MinClusters {
		return fmt.Errorf("%w: clusters [%d, %d]", ErrInvalidBundle, c.MinClusters, c.MaxClusters)
	}
	return nil
}
