package diamonds

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cwbudde/algo-background/priors"
)

// File is a rendered sampler input.
type File struct {
	Name string
	Data []byte
}

// Bundle is the complete set of sampler inputs for one fit.
type Bundle struct {
	Run        int          // results sub-directory number
	Boundaries [][2]float64 // (lower, upper) per free parameter
	Nyquist    float64      // µHz
	Sampler    SamplerConfig
	Clustering ClusteringConfig
}

// NewBundle prepares the inputs for the boundaries derived in res, with the
// default sampler and clustering settings.
func NewBundle(res *priors.Result, run int) Bundle {
	return Bundle{
		Run:        run,
		Boundaries: res.Boundaries.Pairs(),
		Nyquist:    res.Nyquist,
		Sampler:    DefaultSamplerConfig(),
		Clustering: DefaultClusteringConfig(),
	}
}

// Render validates b and renders its four files in memory.
func (b Bundle) Render() ([]File, error) {
	run, err := RunName(b.Run)
	if err != nil {
		return nil, err
	}
	if err := b.validateBoundaries(); err != nil {
		return nil, err
	}
	if !(b.Nyquist > 0) || math.IsInf(b.Nyquist, 0) {
		return nil, fmt.Errorf("%w: Nyquist frequency %v", ErrInvalidBundle, b.Nyquist)
	}
	if err := b.Sampler.Validate(); err != nil {
		return nil, err
	}
	if err := b.Clustering.Validate(); err != nil {
		return nil, err
	}

	return []File{
		{Name: HyperParametersFile(run), Data: renderBoundaries(b.Boundaries)},
		{Name: SamplerConfigFile, Data: renderSamplerConfig(b.Sampler)},
		{Name: NyquistFile, Data: []byte(formatFloat(b.Nyquist))},
		{Name: ClusteringFile, Data: renderClustering(b.Clustering)},
	}, nil
}

// validateBoundaries rejects empty sets and ranges that are empty once
// rounded to the three decimals written to disk.
func (b Bundle) validateBoundaries() error {
	if len(b.Boundaries) == 0 {
		return fmt.Errorf("%w: no boundaries", ErrInvalidBundle)
	}
	for i, p := range b.Boundaries {
		lo, hi := round3(p[0]), round3(p[1])
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
			return fmt.Errorf("%w: boundary %d [%v, %v]", ErrInvalidBundle, i, p[0], p[1])
		}
	}
	return nil
}

func round3(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	if err != nil {
		return math.NaN()
	}
	return r
}

// Write renders b and stores the files in starDir, creating starDir and the
// run sub-directory as needed. Nothing is written when rendering fails, and
// every file is staged on disk before the first one is replaced. Concurrent
// writers of the same starDir are serialised through a sibling lock file.
func (b Bundle) Write(starDir string) (err error) {
	files, err := b.Render()
	if err != nil {
		return err
	}

	run, _ := RunName(b.Run)
	if err := os.MkdirAll(filepath.Join(starDir, run), 0o755); err != nil {
		return fmt.Errorf("diamonds: create run directory: %w", err)
	}

	lock := newStarLock(filepath.Clean(starDir))
	if err := lock.acquire(); err != nil {
		return err
	}
	defer func() {
		if uerr := lock.release(); err == nil {
			err = uerr
		}
	}()

	return writeAll(starDir, files)
}

// writeAll stages every file as a temporary sibling, then renames them into
// place.
func writeAll(dir string, files []File) error {
	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, p := range staged {
			_ = os.Remove(p)
		}
	}

	for _, f := range files {
		tmp, err := os.CreateTemp(dir, "."+f.Name+".*")
		if err != nil {
			cleanup()
			return fmt.Errorf("diamonds: stage %s: %w", f.Name, err)
		}
		staged = append(staged, tmp.Name())

		_, werr := tmp.Write(f.Data)
		cerr := tmp.Close()
		if werr != nil || cerr != nil {
			cleanup()
			if werr == nil {
				werr = cerr
			}
			return fmt.Errorf("diamonds: stage %s: %w", f.Name, werr)
		}
		if err := os.Chmod(tmp.Name(), 0o644); err != nil {
			cleanup()
			return fmt.Errorf("diamonds: stage %s: %w", f.Name, err)
		}
	}

	for i, f := range files {
		if err := os.Rename(staged[i], filepath.Join(dir, f.Name)); err != nil {
			cleanup()
			return fmt.Errorf("diamonds: write %s: %w", f.Name, err)
		}
	}

	return nil
}
