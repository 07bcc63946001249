package diamonds

import (
	"fmt"
	"path/filepath"
)

// File names shared with the sampler.
const (
	SamplerConfigFile         = "NSMC_configuringParameters.txt"
	NyquistFile               = "NyquistFrequency.txt"
	ClusteringFile            = "Xmeans_configuringParameters.txt"
	ParameterSummaryFile      = "background_parameterSummary.txt"
	ComputationParametersFile = "background_computationParameters.txt"
)

// HyperParametersFile returns the name of the prior boundary file for run.
func HyperParametersFile(run string) string {
	return "background_hyperParameters_" + run + ".txt"
}

// ParameterFile returns the name of the nested-sampling trace of parameter i
// (0-based).
func ParameterFile(i int) string {
	return fmt.Sprintf("background_parameter%03d.txt", i)
}

// MarginalFile returns the name of the marginal distribution of parameter i
// (0-based).
func MarginalFile(i int) string {
	return fmt.Sprintf("background_marginalDistribution%03d.txt", i)
}

// RunName returns the two-digit sub-directory name of run n.
func RunName(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidRun, n)
	}
	return fmt.Sprintf("%02d", n), nil
}

// Layout resolves the working directories below a local path.
type Layout struct {
	LocalPath string
}

// DataDir returns the directory holding the PSD files.
func (l Layout) DataDir() string {
	return filepath.Join(l.LocalPath, "data")
}

// PSDPath returns the PSD file of a star, e.g. data/KIC012008916.txt.
func (l Layout) PSDPath(catalog, star string) string {
	return filepath.Join(l.DataDir(), catalog+star+".txt")
}

// StarDir returns the directory holding a star's sampler inputs.
func (l Layout) StarDir(catalog, star string) string {
	return filepath.Join(l.LocalPath, "results", catalog+star)
}

// ResultsDir returns the directory the sampler writes the results of run
// subdir into.
func (l Layout) ResultsDir(catalog, star, subdir string) string {
	return filepath.Join(l.StarDir(catalog, star), subdir)
}

// Run returns a reader for the results in subdir.
func (l Layout) Run(catalog, star, subdir string) Run {
	return Run{Dir: l.ResultsDir(catalog, star, subdir)}
}
