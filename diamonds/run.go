package diamonds

import (
	"fmt"
	"path/filepath"

	"github.com/cwbudde/algo-background/background"
)

// Run reads the outputs the sampler left in one results directory.
type Run struct {
	Dir string
}

func (r Run) path(name string) string { return filepath.Join(r.Dir, name) }

// Summary reads the parameter summary.
func (r Run) Summary() ([]Estimate, error) {
	return ReadParameterSummary(r.path(ParameterSummaryFile))
}

// ModelName reads the name of the fitted background model.
func (r Run) ModelName() (string, error) {
	return ReadModelName(r.path(ComputationParametersFile))
}

// Variant resolves the fitted model name to a background variant.
func (r Run) Variant() (background.Variant, error) {
	name, err := r.ModelName()
	if err != nil {
		return 0, err
	}
	return background.ParseVariant(name)
}

// BestFit returns the fitted parameters, taken as the posterior medians.
func (r Run) BestFit() (background.Params, error) {
	v, err := r.Variant()
	if err != nil {
		return background.Params{}, err
	}

	est, err := r.Summary()
	if err != nil {
		return background.Params{}, err
	}

	p, err := background.Unpack(v, Medians(est))
	if err != nil {
		return background.Params{}, fmt.Errorf("%s: %w", r.path(ParameterSummaryFile), err)
	}
	return p, nil
}

// Samples reads the nested-sampling trace of parameter i.
func (r Run) Samples(i int) ([]float64, error) {
	return ReadParameterSamples(r.path(ParameterFile(i)))
}

// Marginal reads the marginal distribution of parameter i.
func (r Run) Marginal(i int) (Marginal, error) {
	return ReadMarginal(r.path(MarginalFile(i)))
}
