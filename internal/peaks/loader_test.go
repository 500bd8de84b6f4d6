package peaks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nowling-lab/genomic-element-ml/core/windows"
)

func write(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peaks.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadPrimarySchema(t *testing.T) {
	// narrowPeak-style: 10 columns, summit offset last.
	path := write(t, `# comment
chr1	100	200	peak_1	960	.	5.1	12.0	10.5	50
chr2	300	420	peak_2	851	.	4.7	11.2	9.9	61
`)
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []windows.Peak{
		{Chrom: "chr1", Start: 100, End: 200, Summit: 50},
		{Chrom: "chr2", Start: 300, End: 420, Summit: 61},
	}, got)
}

func TestLoadFallsBackToThreeColumns(t *testing.T) {
	path := write(t, "chr1 100 200\nchr2 300 420\n")
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []windows.Peak{
		{Chrom: "chr1", Start: 100, End: 200, Summit: 0},
		{Chrom: "chr2", Start: 300, End: 420, Summit: 0},
	}, got)
}

func TestLoadExtraColumnsIgnored(t *testing.T) {
	path := write(t, "chr1\t100\t200\ta\tb\tc\td\te\tf\t50\textra\tmore\n")
	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 50, got[0].Summit)
}

func TestLoadBothSchemasFail(t *testing.T) {
	path := write(t, "chr1 100 200\nchr2 oops 420\n")
	_, err := Load(path)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, path, pe.Path)
	require.Contains(t, pe.Fallback, "oops")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
