package render

import (
	"minimax/game"
	"minimax/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var canonical = []int{3, 5, 2, 9, 12, 5, 23, 23}

func TestFlat(t *testing.T) {
	t.Run("canonical layout", func(t *testing.T) {
		got := Flat(canonical)
		require.Equal(t, []string{
			"         3",
			"     5     2",
			"   9  12   5  23",
			" 23",
		}, got)
	})

	t.Run("level L takes the next 2^L scores", func(t *testing.T) {
		got := Flat([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
		require.Len(t, got, 5)
		for level, want := range []int{1, 2, 4, 8, 1} {
			require.Len(t, strings.Fields(got[level]), want, "level %d", level)
		}
	})

	t.Run("single score", func(t *testing.T) {
		require.Equal(t, []string{"  7"}, Flat([]int{7}))
	})

	t.Run("empty sequence", func(t *testing.T) {
		require.Empty(t, Flat([]int{}))
	})
}

func TestTree(t *testing.T) {
	t.Run("height plus one rows of 2^L tokens", func(t *testing.T) {
		for height := 0; height <= 6; height++ {
			scores := make([]int, 1<<height)
			for i := range scores {
				scores[i] = i*7%11 - 5
			}
			levels, err := searcher.Levels(scores, height, game.Maximizer)
			require.NoError(t, err)

			lines := Tree(levels)
			require.Len(t, lines, height+1, "height %d", height)
			for level, line := range lines {
				require.Len(t, strings.Fields(line), 1<<level, "height %d level %d", height, level)
			}
		}
	})

	t.Run("canonical tree", func(t *testing.T) {
		levels, err := searcher.Levels(canonical, 3, game.Maximizer)
		require.NoError(t, err)

		got := Tree(levels)
		require.Equal(t, []string{
			"           12",
			"     5           12",
			"  5     9     12    23",
			" 3  5  2  9 12  5 23 23",
		}, got)
		require.Equal(t, []string{"12"}, strings.Fields(got[0]), "Root row shows the optimal value")
		require.Equal(t, []string{"3", "5", "2", "9", "12", "5", "23", "23"}, strings.Fields(got[3]))
	})

	t.Run("large floating point values stay in decimal form", func(t *testing.T) {
		got := Tree([][]float64{{1234567.5}, {1234567.5, -3}})
		require.Equal(t, []string{"1234567.5"}, strings.Fields(got[0]))
		require.Equal(t, []string{"1234567.5", "-3"}, strings.Fields(got[1]))

		require.Equal(t, []string{" 2500000"}, Flat([]float64{2.5e6}))
	})

	t.Run("string joins rows", func(t *testing.T) {
		require.Equal(t, "a\nb", String([]string{"a", "b"}))
	})
}
