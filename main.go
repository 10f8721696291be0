package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"minimax/experiments"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"
	"minimax/render"
	"minimax/searcher"
	"minimax/tree"
	"minimax/utils"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var layouts = []string{"tree", "flat"}

type config struct {
	scores     string
	file       string
	root       string
	truncate   bool
	goroutines int
	layout     string
	metrics    string
	debug      bool
	experiment string
	height     int
	trials     int
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("evaluation failed")
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("minimax", flag.ContinueOnError)
	fs.StringVar(&cfg.scores, "scores", "", "Leaf scores separated by commas or whitespace; the count must be a power of two")
	fs.StringVar(&cfg.file, "file", "", "File of leaf scores in the same format as -scores")
	fs.StringVar(&cfg.root, "root", meta.ROOT_ROLE, "Role moving at the root: max or min")
	fs.BoolVar(&cfg.truncate, "truncate", false, "Round the height down instead of rejecting a count that is not a power of two")
	fs.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "Number of goroutines evaluating sibling subtrees")
	fs.StringVar(&cfg.layout, "layout", meta.LAYOUT, "Tree rendering: tree (backed-up values) or flat (sequence by level)")
	fs.StringVar(&cfg.metrics, "metrics", "", "Directory to append an evaluation record to")
	fs.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&cfg.experiment, "experiment", "", "Run an experiment instead of a single evaluation: speedup")
	fs.IntVar(&cfg.height, "height", experiments.Height, "Tree height of experiment trees")
	fs.IntVar(&cfg.trials, "trials", experiments.Trials, "Random trees per experiment")
	err := fs.Parse(args)
	return cfg, err
}

func loadScores(cfg config) ([]float64, error) {
	switch {
	case cfg.scores != "" && cfg.file != "":
		return nil, errors.New("use either -scores or -file, not both")
	case cfg.scores != "":
		return game.ParseScores(cfg.scores)
	case cfg.file != "":
		return game.LoadScores(cfg.file)
	}
	return meta.SAMPLE_SCORES, nil
}

// run evaluates the tree described by args and writes the rendering and the
// optimal value to stdout. Nothing is written unless evaluation succeeds.
func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if cfg.debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.experiment != "" {
		return runExperiment(cfg)
	}

	scores, err := loadScores(cfg)
	if err != nil {
		return err
	}
	root, err := game.ParseRole(cfg.root)
	if err != nil {
		return err
	}
	if !utils.Contains(layouts, cfg.layout) {
		return fmt.Errorf("unknown layout %q, expected one of %v", cfg.layout, layouts)
	}
	if cfg.goroutines < 1 {
		return fmt.Errorf("invalid goroutines %d, expected at least 1", cfg.goroutines)
	}

	mode := tree.Strict
	if cfg.truncate {
		mode = tree.Truncate
	}
	options := []searcher.Option{
		searcher.WithRoot(root),
		searcher.WithMode(mode),
		searcher.WithGoroutines(cfg.goroutines),
	}
	if cfg.metrics != "" {
		options = append(options, searcher.WithMetrics())
	}

	result, err := searcher.Solve(scores, options...)
	if err != nil {
		return fmt.Errorf("cannot evaluate %d scores: %w", len(scores), err)
	}

	var lines []string
	if cfg.layout == "flat" {
		lines = render.Flat(scores)
	} else {
		levels, err := searcher.Levels(scores[:tree.Leaves(result.Height)], result.Height, root)
		if err != nil {
			return err
		}
		lines = render.Tree(levels)
	}

	if cfg.metrics != "" {
		if err := writeMetrics(cfg.metrics, len(scores), result); err != nil {
			return err
		}
	}

	style := lipgloss.NewRenderer(stdout).NewStyle().Bold(true)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, style.Render("Game Tree Representation:"))
	fmt.Fprintln(stdout, render.String(lines))
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, style.Render("The optimal value is: "+game.FormatScore(result.Value)))
	return nil
}

func writeMetrics(dir string, length int, result searcher.Result[float64]) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create metrics writer: %w", err)
	}
	record := metrics.NewEvaluationRecord(length, result.Value, result.Metric)
	if err := writer.WriteEvaluations([]metrics.EvaluationRecord{record}); err != nil {
		return err
	}
	log.Info().Msgf("stored evaluation record %s in %s", record.ID, writer.Path())
	return nil
}

func runExperiment(cfg config) error {
	if cfg.experiment != "speedup" {
		return fmt.Errorf("unknown experiment %q", cfg.experiment)
	}
	dir := cfg.metrics
	if dir == "" {
		dir = filepath.Join("experiments", "speedup")
	}
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	_, err = experiments.RunSpeedupExperiment(experiments.Config{
		Height:     cfg.height,
		Trials:     cfg.trials,
		Goroutines: experiments.ParallelConfigs,
		Seed:       uint64(time.Now().UnixNano()),
	}, writer)
	return err
}
