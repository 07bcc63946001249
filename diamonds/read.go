package diamonds

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// readTable parses a whitespace separated numeric table. Comment lines
// starting with '#' and blank lines are skipped; every row must hold at
// least minCols values and columns beyond maxCols are ignored.
func readTable(r io.Reader, minCols, maxCols int) ([][]float64, error) {
	var rows [][]float64

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++

		fields, ok := dataFields(sc.Text())
		if !ok {
			continue
		}
		if len(fields) < minCols {
			return nil, fmt.Errorf("%w: line %d: want %d columns, got %d", ErrSyntax, line, minCols, len(fields))
		}
		if len(fields) > maxCols {
			fields = fields[:maxCols]
		}

		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: column %d: %v", ErrSyntax, line, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("diamonds: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	return rows, nil
}

func dataFields(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}
	return strings.Fields(line), true
}

func readTableFile(path string, minCols, maxCols int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("diamonds: open: %w", err)
	}
	defer f.Close()

	rows, err := readTable(f, minCols, maxCols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// readColumn reads a table whose values are laid out one per line.
func readColumn(path string) ([]float64, error) {
	rows, err := readTableFile(path, 1, 1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r[0]
	}
	return out, nil
}

// ReadBoundaries reads a prior hyper-parameter file.
func ReadBoundaries(path string) ([][2]float64, error) {
	rows, err := readTableFile(path, 2, 2)
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, len(rows))
	for i, r := range rows {
		out[i] = [2]float64{r[0], r[1]}
	}
	return out, nil
}

// ReadSamplerConfig reads a nested sampler configuration file.
func ReadSamplerConfig(path string) (SamplerConfig, error) {
	v, err := readColumn(path)
	if err != nil {
		return SamplerConfig{}, err
	}
	if len(v) != 8 {
		return SamplerConfig{}, fmt.Errorf("%w: %s: want 8 values, got %d", ErrSyntax, path, len(v))
	}

	counts := make([]int, 5)
	for i := range counts {
		if v[i] != math.Trunc(v[i]) {
			return SamplerConfig{}, fmt.Errorf("%w: %s: line %d: %v is not an integer", ErrSyntax, path, i+1, v[i])
		}
		counts[i] = int(v[i])
	}

	return SamplerConfig{
		InitialLivePoints:            counts[0],
		MinLivePoints:                counts[1],
		MaxDrawAttempts:              counts[2],
		IterationsWithoutClustering:  counts[3],
		IterationsWithSameClustering: counts[4],
		InitialEnlargementFraction:   v[5],
		ShrinkingRate:                v[6],
		TerminationFactor:            v[7],
	}, nil
}

// ReadClusteringConfig reads an X-means configuration file.
func ReadClusteringConfig(path string) (ClusteringConfig, error) {
	v, err := readColumn(path)
	if err != nil {
		return ClusteringConfig{}, err
	}
	if len(v) != 2 || v[0] != math.Trunc(v[0]) || v[1] != math.Trunc(v[1]) {
		return ClusteringConfig{}, fmt.Errorf("%w: %s: want two integers, got %v", ErrSyntax, path, v)
	}
	return ClusteringConfig{MinClusters: int(v[0]), MaxClusters: int(v[1])}, nil
}

// ReadNyquist reads the Nyquist frequency file.
func ReadNyquist(path string) (float64, error) {
	v, err := readColumn(path)
	if err != nil {
		return 0, err
	}
	if len(v) != 1 {
		return 0, fmt.Errorf("%w: %s: want 1 value, got %d", ErrSyntax, path, len(v))
	}
	return v[0], nil
}

// Estimate is one row of a parameter summary.
type Estimate struct {
	Mean          float64
	Median        float64
	Mode          float64
	SecondMoment  float64
	LowerCredible float64 // lower limit of the credible interval
	UpperCredible float64 // upper limit of the credible interval
}

// ReadParameterSummary reads a parameter summary, one row per free
// parameter.
func ReadParameterSummary(path string) ([]Estimate, error) {
	rows, err := readTableFile(path, 6, 6)
	if err != nil {
		return nil, err
	}
	out := make([]Estimate, len(rows))
	for i, r := range rows {
		out[i] = Estimate{
			Mean:          r[0],
			Median:        r[1],
			Mode:          r[2],
			SecondMoment:  r[3],
			LowerCredible: r[4],
			UpperCredible: r[5],
		}
	}
	return out, nil
}

// Medians returns the median column of a parameter summary, the estimates
// used as best-fit parameters.
func Medians(est []Estimate) []float64 {
	out := make([]float64, len(est))
	for i, e := range est {
		out[i] = e.Median
	}
	return out
}

// ReadModelName returns the background model name recorded in a
// computation parameters file: the second-to-last value in the file.
func ReadModelName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("diamonds: open: %w", err)
	}

	var tokens []string
	for _, line := range strings.Split(string(data), "\n") {
		if fields, ok := dataFields(line); ok {
			tokens = append(tokens, fields...)
		}
	}
	if len(tokens) < 2 {
		return "", fmt.Errorf("%s: %w", path, ErrNoData)
	}

	return tokens[len(tokens)-2], nil
}

// ReadParameterSamples reads the nested-sampling trace of one parameter.
func ReadParameterSamples(path string) ([]float64, error) {
	return readColumn(path)
}

// Marginal is a sampled marginal posterior distribution.
type Marginal struct {
	Values      []float64
	Probability []float64
}

// ReadMarginal reads a two-column marginal distribution file.
func ReadMarginal(path string) (Marginal, error) {
	rows, err := readTableFile(path, 2, 2)
	if err != nil {
		return Marginal{}, err
	}
	m := Marginal{
		Values:      make([]float64, len(rows)),
		Probability: make([]float64, len(rows)),
	}
	for i, r := range rows {
		m.Values[i], m.Probability[i] = r[0], r[1]
	}
	return m, nil
}
