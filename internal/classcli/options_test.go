package classcli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("peakclass")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, args)
}

func validArgs() []string {
	return []string{
		"--train-treatment", "train-t.fa",
		"--train-control", "train-c.fa",
		"--target-treatment", "target-t.fa",
		"--target-control", "target-c.fa",
	}
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, validArgs()...)
	require.NoError(t, err)
	require.Equal(t, 0.01, opt.Lambda)
	require.Equal(t, 11, opt.EnsembleSize)
	require.Equal(t, 10, opt.Epochs)
	require.Equal(t, "-", opt.Out)
}

func TestTrainingFilesOptionalWithLoadModel(t *testing.T) {
	_, err := parse(t,
		"--target-treatment", "tt.fa",
		"--target-control", "tc.fa",
		"--load-model", "model.db",
	)
	require.NoError(t, err)

	_, err = parse(t, "--target-treatment", "tt.fa", "--target-control", "tc.fa")
	require.Error(t, err)
}

func TestLoadModelConflictsWithSaveModel(t *testing.T) {
	args := append(validArgs(), "--load-model", "a.db", "--save-model", "b.db")
	_, err := parse(t, args...)
	require.Error(t, err)
}

func TestParameterValidation(t *testing.T) {
	for _, extra := range [][]string{
		{"--lambda", "-0.5"},
		{"--ensemble-size", "0"},
		{"--epochs", "0"},
		{"--learning-rate", "0"},
		{"--threads", "-1"},
	} {
		_, err := parse(t, append(validArgs(), extra...)...)
		require.Error(t, err, "args %v", extra)
	}
}

func TestConfigFileSuppliesDefaultsButFlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
training:
  lambda: 0.5
  ensembleSize: 21
  seed: 7
threads: 3
`), 0o644))

	args := append(validArgs(), "--config", path, "--lambda", "0.2")
	opt, err := parse(t, args...)
	require.NoError(t, err)
	require.Equal(t, 0.2, opt.Lambda, "explicit flag wins")
	require.Equal(t, 21, opt.EnsembleSize, "config fills unset flag")
	require.Equal(t, int64(7), opt.Seed)
	require.Equal(t, 3, opt.Threads)
}
