package diamonds

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	l := Layout{LocalPath: "/data/bg"}

	require.Equal(t, filepath.FromSlash("/data/bg/data"), l.DataDir())
	require.Equal(t, filepath.FromSlash("/data/bg/data/KIC012008916.txt"), l.PSDPath("KIC", "012008916"))
	require.Equal(t, filepath.FromSlash("/data/bg/results/KIC012008916"), l.StarDir("KIC", "012008916"))
	require.Equal(t, filepath.FromSlash("/data/bg/results/KIC012008916/00"), l.ResultsDir("KIC", "012008916", "00"))
	require.Equal(t, Run{Dir: l.ResultsDir("KIC", "012008916", "01")}, l.Run("KIC", "012008916", "01"))
}

func TestFileNames(t *testing.T) {
	require.Equal(t, "background_hyperParameters_07.txt", HyperParametersFile("07"))
	require.Equal(t, "background_parameter000.txt", ParameterFile(0))
	require.Equal(t, "background_parameter011.txt", ParameterFile(11))
	require.Equal(t, "background_marginalDistribution004.txt", MarginalFile(4))
}

func TestRunName(t *testing.T) {
	for n, want := range map[int]string{0: "00", 7: "07", 12: "12", 104: "104"} {
		got, err := RunName(n)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := RunName(-1)
	require.ErrorIs(t, err, ErrInvalidRun)
}
