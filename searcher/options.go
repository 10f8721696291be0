package searcher

import (
	"fmt"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/tree"
)

type Option func(c *config)

type config struct {
	goroutines int
	root       game.Role
	mode       tree.Mode
	metrics    metrics.Collector
}

// WithGoroutines evaluates sibling subtrees concurrently near the root so
// that up to the given number of goroutines are busy.
func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

func WithRoot(role game.Role) Option {
	return func(c *config) {
		c.root = role
	}
}

func WithMode(mode tree.Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options ...Option) config {
	c := config{ // Default values
		goroutines: 1,
		root:       game.Maximizer,
		mode:       tree.Strict,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.mode != tree.Strict && c.mode != tree.Truncate {
		panic(fmt.Sprintf("unknown height mode %d", c.mode))
	}
	return c
}
