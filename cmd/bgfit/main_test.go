package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-background/diamonds"
	"github.com/cwbudde/algo-background/internal/testutil"
)

// workspace creates a local path holding the PSD of KIC012008916 and a config
// file pointing at it.
func workspace(t *testing.T) (local, cfgFile string) {
	t.Helper()
	local = t.TempDir()

	freq := testutil.FrequencyGrid(testutil.KeplerBin, testutil.KeplerBin*10, 3500)
	power := testutil.KIC012008916().PSD(freq)

	var buf bytes.Buffer
	for i := range freq {
		fmt.Fprintf(&buf, "%.8f %.6e\n", freq[i], power[i])
	}
	require.NoError(t, os.MkdirAll(filepath.Join(local, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(local, "data", "KIC012008916.txt"), buf.Bytes(), 0o644))

	cfgFile = filepath.Join(t.TempDir(), "bgfit.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("local_path: "+local+"\nlog_level: error\n"), 0o644))

	return local, cfgFile
}

// fitResults fakes the output of a Flat fit in results/KIC012008916/00.
func fitResults(t *testing.T, local string) string {
	t.Helper()
	dir := filepath.Join(local, "results", "KIC012008916", "00")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	files := map[string]string{
		diamonds.ComputationParametersFile: "KIC\n012008916\n00\nFlat\n0\n",
		diamonds.ParameterSummaryFile: "# mean median mode II lower upper\n" +
			"15.1 15.0 14.9 0.1 14.5 15.5\n" +
			"290 300 305 20 280 320\n" +
			"161.8 162.0 162.1 0.5 161.0 163.0\n" +
			"11.2 11.0 10.9 0.3 10.5 11.5\n",
		diamonds.ParameterFile(2): "150\n170\n158\n162.5\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPriorsCommand(t *testing.T) {
	local, cfg := workspace(t)

	out, err := execute(t, "priors", "KIC", "012008916", "--numax", "162", "--model", "ThreeHarvey", "--subdir", "2", "--config", cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	require.Contains(t, lines[0], "Parameter")
	require.Contains(t, lines[1], "W")

	starDir := filepath.Join(local, "results", "KIC012008916")
	for _, name := range []string{
		diamonds.HyperParametersFile("02"),
		diamonds.SamplerConfigFile,
		diamonds.NyquistFile,
		diamonds.ClusteringFile,
	} {
		_, err := os.Stat(filepath.Join(starDir, name))
		require.NoError(t, err, name)
	}
	info, err := os.Stat(filepath.Join(starDir, "02"))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	pairs, err := diamonds.ReadBoundaries(filepath.Join(starDir, diamonds.HyperParametersFile("02")))
	require.NoError(t, err)
	require.Len(t, pairs, 10)
}

func TestPriorsCommandErrors(t *testing.T) {
	_, cfg := workspace(t)

	_, err := execute(t, "priors", "KIC", "012008916", "--numax", "162", "--model", "FiveHarvey", "--config", cfg)
	require.Error(t, err)

	_, err = execute(t, "priors", "KIC", "012008916", "--model", "Flat", "--config", cfg)
	require.Error(t, err)

	_, err = execute(t, "priors", "KIC", "999", "--numax", "162", "--config", cfg)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummaryCommand(t *testing.T) {
	local, cfg := workspace(t)
	fitResults(t, local)

	out, err := execute(t, "summary", "KIC", "012008916", "00", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "Model: Flat (4 free parameters)")
	require.Contains(t, out, "ν_max")
	require.Contains(t, out, "162.0000")
}

func TestModelCommand(t *testing.T) {
	local, cfg := workspace(t)
	fitResults(t, local)

	outFile := filepath.Join(t.TempDir(), "model.tsv")
	_, err := execute(t, "model", "KIC", "012008916", "00", "--out", outFile, "--config", cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3501)
	require.Equal(t, "# "+strings.Join(modelColumns, "\t"), lines[0])
	require.Len(t, strings.Split(lines[1], "\t"), len(modelColumns))

	// Explicit parameters of the wrong length are rejected.
	_, err = execute(t, "model", "KIC", "012008916", "00", "--params", "1,2", "--config", cfg)
	require.Error(t, err)

	out, err := execute(t, "model", "KIC", "012008916", "00", "--params", "15,300,162,11", "--window", "hanning", "--config", cfg)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# freq\tpsd"))
}

func TestTraceCommand(t *testing.T) {
	local, cfg := workspace(t)
	fitResults(t, local)

	out, err := execute(t, "trace", "KIC", "012008916", "00", "2", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "Parameter 02: ν_max [µHz]")
	require.Contains(t, out, "Iterations: 4")
	require.Contains(t, out, "150.0000 .. 170.0000")
	require.Contains(t, out, "Last:       162.5000")

	_, err = execute(t, "trace", "KIC", "012008916", "00", "x", "--config", cfg)
	require.Error(t, err)
}

func TestVariantsCommand(t *testing.T) {
	_, cfg := workspace(t)

	out, err := execute(t, "variants", "--config", cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	require.Contains(t, out, "ThreeHarveyColorNoGaussian")
}

func TestWindowsCommand(t *testing.T) {
	_, cfg := workspace(t)

	out, err := execute(t, "windows", "flat", "hanning", "--size", "11", "--config", cfg)
	require.NoError(t, err)
	require.Regexp(t, `(?m)^flat\s+11\s+1\.000000\s+1\.0000$`, out)

	_, err = execute(t, "windows", "kaiser", "--config", cfg)
	require.Error(t, err)
}

func TestWindowProperties(t *testing.T) {
	gain, enbw := windowProperties([]float64{1, 1, 1, 1})
	require.Equal(t, 1.0, gain)
	require.Equal(t, 1.0, enbw)

	gain, enbw = windowProperties([]float64{0, 1, 0})
	require.InDelta(t, 1.0/3, gain, 1e-12)
	require.Equal(t, 3.0, enbw)
}
