package searcher

import (
	"math/bits"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/tree"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

type Result[T constraints.Ordered] struct {
	Value  T
	Height int
	Root   game.Role
	Metric metrics.SearchMetric
}

type evaluation[T constraints.Ordered] struct {
	scores  []T
	height  int
	split   int // Interior nodes above this depth fan out to a new goroutine
	metrics metrics.Collector
}

// Minimax returns the value of the node at (depth, index) when role moves
// there. The scores and height are validated once; the recursion itself
// cannot leave the sequence.
func Minimax[T constraints.Ordered](depth, index int, role game.Role, scores []T, height int) (T, error) {
	var zero T
	if err := tree.Validate(len(scores), height); err != nil {
		return zero, err
	}
	node := tree.Position{Depth: depth, Index: index}
	if err := node.Check(height); err != nil {
		return zero, err
	}

	e := &evaluation[T]{
		scores:  scores,
		height:  height,
		metrics: metrics.NewDummyCollector(),
	}
	return e.minimax(node, role), nil
}

// Evaluate returns the optimal value of the tree with the maximizer to move at the root.
func Evaluate[T constraints.Ordered](scores []T, height int) (T, error) {
	return Minimax(tree.Root.Depth, tree.Root.Index, game.Maximizer, scores, height)
}

// Solve derives the height from the sequence length and evaluates the tree
// from the root. Only in tree.Truncate mode are trailing scores dropped.
func Solve[T constraints.Ordered](scores []T, options ...Option) (Result[T], error) {
	c := newConfig(options...)

	height, err := tree.HeightOf(len(scores), c.mode)
	if err != nil {
		return Result[T]{}, err
	}

	if ignored := len(scores) - tree.Leaves(height); ignored > 0 {
		log.Warn().Msgf("ignoring %d trailing scores beyond the %d leaves of a height %d tree", ignored, tree.Leaves(height), height)
		scores = scores[:tree.Leaves(height)]
	}
	if err := tree.Validate(len(scores), height); err != nil {
		return Result[T]{}, err
	}

	e := &evaluation[T]{
		scores:  scores,
		height:  height,
		split:   splitDepth(c.goroutines),
		metrics: c.metrics,
	}

	c.metrics.Start(c.goroutines, height, c.root)
	value := e.minimax(tree.Root, c.root)
	metric := c.metrics.Complete()
	log.Debug().Msgf("evaluated %d leaves at height %d from %s root with %d goroutines: %v", tree.Leaves(height), height, c.root, c.goroutines, value)

	return Result[T]{
		Value:  value,
		Height: height,
		Root:   c.root,
		Metric: metric,
	}, nil
}

func (e *evaluation[T]) minimax(node tree.Position, role game.Role) T {
	if node.IsLeaf(e.height) {
		e.metrics.AddLeaf()
		return e.scores[node.Index]
	}
	e.metrics.AddNode()

	left, right := node.Children()
	next := role.Opponent()

	var a, b T
	if node.Depth < e.split {
		var wg sync.WaitGroup
		wg.Add(1)
		e.metrics.AddSpawn()
		go func() {
			defer wg.Done()
			a = e.minimax(left, next)
		}()
		b = e.minimax(right, next)
		wg.Wait()
	} else {
		a = e.minimax(left, next)
		b = e.minimax(right, next)
	}
	return combine(role, a, b)
}

func combine[T constraints.Ordered](role game.Role, a, b T) T {
	if role == game.Maximizer {
		return max(a, b)
	}
	return min(a, b)
}

// splitDepth is ceil(log2(goroutines)): fanning out above it keeps at most
// that many subtrees running at once.
func splitDepth(goroutines int) int {
	if goroutines <= 1 {
		return 0
	}
	return bits.Len(uint(goroutines - 1))
}
