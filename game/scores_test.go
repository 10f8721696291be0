package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	t.Run("parsing comma separated scores", func(t *testing.T) {
		got, err := ParseScores("3,5,2,9,12,5,23,23")
		require.NoError(t, err)
		require.Equal(t, []float64{3, 5, 2, 9, 12, 5, 23, 23}, got)
	})

	t.Run("parsing mixed separators and negative or fractional values", func(t *testing.T) {
		got, err := ParseScores(" -1, 2.5;\n7\t0 ")
		require.NoError(t, err)
		require.Equal(t, []float64{-1, 2.5, 7, 0}, got)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseScores(" , \n")
		require.ErrorIs(t, err, ErrNoScores)
	})

	t.Run("rejects non numeric tokens", func(t *testing.T) {
		_, err := ParseScores("3,five")
		require.ErrorIs(t, err, ErrInvalidScore)
		require.Contains(t, err.Error(), `"five"`)
	})

	t.Run("rejects values without a total order", func(t *testing.T) {
		for _, input := range []string{"1,NaN", "Inf,2", "1,-inf"} {
			_, err := ParseScores(input)
			require.ErrorIs(t, err, ErrInvalidScore, "input %q", input)
		}
	})
}

func TestLoadScores(t *testing.T) {
	t.Run("loading a newline separated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.txt")
		require.NoError(t, os.WriteFile(path, []byte("3\n5\n2\n9\n"), 0644))

		got, err := LoadScores(path)
		require.NoError(t, err)
		require.Equal(t, []float64{3, 5, 2, 9}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScores(filepath.Join(t.TempDir(), "missing.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.txt")
		require.NoError(t, os.WriteFile(path, []byte("3 x"), 0644))

		_, err := LoadScores(path)
		require.ErrorIs(t, err, ErrInvalidScore)
	})
}

func TestFormatScore(t *testing.T) {
	require.Equal(t, "1234567.5", FormatScore(1234567.5), "Large floats should not use exponent form")
	require.Equal(t, "100000000000000000000", FormatScore(1e20))
	require.Equal(t, "0.000001", FormatScore(1e-6))
	require.Equal(t, "12", FormatScore(12.0))
	require.Equal(t, "-2.5", FormatScore(float32(-2.5)))
	require.Equal(t, "23", FormatScore(23))
	require.Equal(t, "max", FormatScore("max"))
}
