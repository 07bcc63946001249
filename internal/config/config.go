// Package config loads the bgfit configuration.
//
// Values are resolved by viper in the usual order of precedence:
//
//  1. Command-line flags bound to a key
//  2. Environment variables, prefixed BGFIT_ with dots replaced by
//     underscores (BGFIT_LOCAL_PATH, BGFIT_SAMPLER_TERMINATION_FACTOR)
//  3. The YAML config file, $HOME/.bgfit.yaml by default
//  4. Defaults set by [SetDefaults]
//
// Example:
//
//	v := viper.New()
//	config.SetDefaults(v)
//	cfg, err := config.Load(v)
package config

import (
	"fmt"
	"math"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-background/background"
	"github.com/cwbudde/algo-background/diamonds"
	"github.com/cwbudde/algo-background/priors"
)

// Configuration keys.
const (
	KeyLocalPath          = "local_path"
	KeyLogLevel           = "log_level"
	KeyNyquist            = "model.nyquist"
	KeyGranulationOverlap = "priors.overlap.granulation"
	KeyRotationOverlap    = "priors.overlap.rotation"

	KeyInitialLivePoints            = "sampler.initial_live_points"
	KeyMinLivePoints                = "sampler.min_live_points"
	KeyMaxDrawAttempts              = "sampler.max_draw_attempts"
	KeyIterationsWithoutClustering  = "sampler.iterations_without_clustering"
	KeyIterationsWithSameClustering = "sampler.iterations_with_same_clustering"
	KeyInitialEnlargementFraction   = "sampler.initial_enlargement_fraction"
	KeyShrinkingRate                = "sampler.shrinking_rate"
	KeyTerminationFactor            = "sampler.termination_factor"

	KeyMinClusters = "clustering.min"
	KeyMaxClusters = "clustering.max"
)

// EnvPrefix prefixes environment variable names.
const EnvPrefix = "BGFIT"

// Config is the resolved configuration.
type Config struct {
	LocalPath          string
	LogLevel           string
	Nyquist            float64 // instrument Nyquist frequency for the model response, µHz
	GranulationOverlap float64
	RotationOverlap    float64
	Sampler            diamonds.SamplerConfig
	Clustering         diamonds.ClusteringConfig
}

// SetDefaults registers the default of every key on v and enables the
// BGFIT_ environment overrides.
func SetDefaults(v *viper.Viper) {
	sampler := diamonds.DefaultSamplerConfig()
	clustering := diamonds.DefaultClusteringConfig()

	v.SetDefault(KeyLocalPath, ".")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyNyquist, background.InstrumentNyquist)
	v.SetDefault(KeyGranulationOverlap, priors.GranulationOverlapRatio)
	v.SetDefault(KeyRotationOverlap, priors.RotationOverlapRatio)

	v.SetDefault(KeyInitialLivePoints, sampler.InitialLivePoints)
	v.SetDefault(KeyMinLivePoints, sampler.MinLivePoints)
	v.SetDefault(KeyMaxDrawAttempts, sampler.MaxDrawAttempts)
	v.SetDefault(KeyIterationsWithoutClustering, sampler.IterationsWithoutClustering)
	v.SetDefault(KeyIterationsWithSameClustering, sampler.IterationsWithSameClustering)
	v.SetDefault(KeyInitialEnlargementFraction, sampler.InitialEnlargementFraction)
	v.SetDefault(KeyShrinkingRate, sampler.ShrinkingRate)
	v.SetDefault(KeyTerminationFactor, sampler.TerminationFactor)

	v.SetDefault(KeyMinClusters, clustering.MinClusters)
	v.SetDefault(KeyMaxClusters, clustering.MaxClusters)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load resolves and validates the configuration held by v. A leading ~ in
// the local path is expanded to the home directory.
func Load(v *viper.Viper) (Config, error) {
	local, err := homedir.Expand(v.GetString(KeyLocalPath))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyLocalPath, err)
	}

	cfg := Config{
		LocalPath:          local,
		LogLevel:           v.GetString(KeyLogLevel),
		Nyquist:            v.GetFloat64(KeyNyquist),
		GranulationOverlap: v.GetFloat64(KeyGranulationOverlap),
		RotationOverlap:    v.GetFloat64(KeyRotationOverlap),
		Sampler: diamonds.SamplerConfig{
			InitialLivePoints:            v.GetInt(KeyInitialLivePoints),
			MinLivePoints:                v.GetInt(KeyMinLivePoints),
			MaxDrawAttempts:              v.GetInt(KeyMaxDrawAttempts),
			IterationsWithoutClustering:  v.GetInt(KeyIterationsWithoutClustering),
			IterationsWithSameClustering: v.GetInt(KeyIterationsWithSameClustering),
			InitialEnlargementFraction:   v.GetFloat64(KeyInitialEnlargementFraction),
			ShrinkingRate:                v.GetFloat64(KeyShrinkingRate),
			TerminationFactor:            v.GetFloat64(KeyTerminationFactor),
		},
		Clustering: diamonds.ClusteringConfig{
			MinClusters: v.GetInt(KeyMinClusters),
			MaxClusters: v.GetInt(KeyMaxClusters),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.LocalPath == "" {
		return fmt.Errorf("config: %s is empty", KeyLocalPath)
	}
	if !(c.Nyquist > 0) || math.IsInf(c.Nyquist, 0) {
		return fmt.Errorf("config: %s must be > 0, got %v", KeyNyquist, c.Nyquist)
	}
	if !(c.GranulationOverlap >= 1) {
		return fmt.Errorf("config: %s must be >= 1, got %v", KeyGranulationOverlap, c.GranulationOverlap)
	}
	if !(c.RotationOverlap >= 1) {
		return fmt.Errorf("config: %s must be >= 1, got %v", KeyRotationOverlap, c.RotationOverlap)
	}
	if err := c.Sampler.Validate(); err != nil {
		return fmt.Errorf("config: sampler: %w", err)
	}
	if err := c.Clustering.Validate(); err != nil {
		return fmt.Errorf("config: clustering: %w", err)
	}
	return nil
}

// Layout returns the working-directory layout below LocalPath.
func (c Config) Layout() diamonds.Layout {
	return diamonds.Layout{LocalPath: c.LocalPath}
}

// PriorOptions returns the synthesizer options the configuration implies.
func (c Config) PriorOptions() []priors.Option {
	return []priors.Option{priors.WithOverlapRatios(c.GranulationOverlap, c.RotationOverlap)}
}

// ModelOptions returns the model evaluation options the configuration
// implies.
func (c Config) ModelOptions() []background.Option {
	return []background.Option{background.WithNyquist(c.Nyquist)}
}

// Bundle returns sampler inputs for res carrying the configured sampler and
// clustering settings.
func (c Config) Bundle(res *priors.Result, run int) diamonds.Bundle {
	b := diamonds.NewBundle(res, run)
	b.Sampler = c.Sampler
	b.Clustering = c.Clustering
	return b
}
