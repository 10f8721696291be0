package experiments

import (
	"minimax/experiments/metrics"
	"minimax/tree"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSpeedupExperiment(t *testing.T) {
	t.Run("one record per trial and config", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir())
		require.NoError(t, err)

		cfg := Config{Height: 8, Trials: 3, Goroutines: []int{1, 4, 16}, Seed: 1}
		records, err := RunSpeedupExperiment(cfg, writer)
		require.NoError(t, err)
		require.Len(t, records, 9)

		for i, record := range records {
			require.Equal(t, 256, record.Length)
			require.Equal(t, 256, record.Leaves)
			require.Equal(t, cfg.Goroutines[i%3], record.Goroutines)
			require.Equal(t, records[i-i%3].Value, record.Value, "Every config should agree within a trial")
		}
	})

	t.Run("rejects empty configs", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir())
		require.NoError(t, err)

		_, err = RunSpeedupExperiment(Config{Height: 4, Trials: 0, Goroutines: []int{1}}, writer)
		require.Error(t, err)
		_, err = RunSpeedupExperiment(Config{Height: 4, Trials: 1}, writer)
		require.Error(t, err)
	})

	t.Run("rejects heights outside the tree range", func(t *testing.T) {
		writer, err := metrics.NewWriter(t.TempDir())
		require.NoError(t, err)

		_, err = RunSpeedupExperiment(Config{Height: -1, Trials: 1, Goroutines: []int{1}}, writer)
		require.ErrorIs(t, err, tree.ErrInvalidInput)

		for _, height := range []int{MaxHeight + 1, 40, tree.MaxHeight} {
			_, err = RunSpeedupExperiment(Config{Height: height, Trials: 1, Goroutines: []int{1}}, writer)
			require.ErrorIs(t, err, tree.ErrInvalidInput, "Height %d should be rejected before allocating", height)
		}
	})
}
