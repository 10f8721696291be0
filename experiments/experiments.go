package experiments

import (
	"fmt"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"
	"minimax/tree"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	Trials    = 5  // Per config
	Height    = 20 // About a million leaves
	MaxHeight = 24 // Keeps a random tree within 128 MiB of ints
)

var ParallelConfigs = []int{1, 2, 4, 8, 16, 32, 64}

type Config struct {
	Height     int
	Trials     int
	Goroutines []int
	Seed       uint64
}

// RunSpeedupExperiment evaluates the same random trees with every goroutine
// count and appends one record per evaluation to the writer.
func RunSpeedupExperiment(cfg Config, writer *metrics.Writer) ([]metrics.EvaluationRecord, error) {
	if cfg.Trials <= 0 || len(cfg.Goroutines) == 0 {
		return nil, fmt.Errorf("experiment needs trials and goroutine configs, got %+v", cfg)
	}
	if cfg.Height < 0 || cfg.Height > MaxHeight {
		return nil, fmt.Errorf("%w: experiment height %d outside 0..%d", tree.ErrInvalidInput, cfg.Height, MaxHeight)
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	records := []metrics.EvaluationRecord{}

	log.Info().Msgf("starting speedup experiment at height %d...", cfg.Height)

	for i := 0; i < cfg.Trials; i++ {
		scores := randomScores(r, cfg.Height)
		baseline := -1 // Scores are non-negative

		log.Info().Msgf("starting trial %d of %d...", i+1, cfg.Trials)

		for _, goroutines := range cfg.Goroutines {
			result, err := searcher.Solve(scores, searcher.WithGoroutines(goroutines), searcher.WithRoot(game.Maximizer), searcher.WithMetrics())
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate trial %d: %w", i+1, err)
			}
			if baseline < 0 {
				baseline = result.Value
			} else if result.Value != baseline {
				return nil, fmt.Errorf("trial %d: %d goroutines found %d, expected %d", i+1, goroutines, result.Value, baseline)
			}
			records = append(records, metrics.NewEvaluationRecord(len(scores), result.Value, result.Metric))

			log.Info().Msgf("completed trial %d with %d goroutines in %s", i+1, goroutines, result.Metric.Duration)
		}
	}

	log.Info().Msg("completed speedup experiment")

	err := writer.WriteEvaluations(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write evaluation records: %w", err)
	}
	log.Info().Msgf("stored %d evaluation records", len(records))

	return records, nil
}

func randomScores(r *rand.Rand, height int) []int {
	scores := make([]int, tree.Leaves(height))
	for i := range scores {
		scores[i] = r.Intn(1000)
	}
	return scores
}
