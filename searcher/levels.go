package searcher

import (
	"minimax/game"
	"minimax/tree"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Levels backs the leaf values up the tree one level at a time and returns
// the value of every node: levels[d] holds the 2^d nodes at depth d and
// levels[0][0] is the value of the root.
func Levels[T constraints.Ordered](scores []T, height int, root game.Role) ([][]T, error) {
	if err := tree.Validate(len(scores), height); err != nil {
		return nil, err
	}

	levels := make([][]T, height+1)
	levels[height] = slices.Clone(scores)
	for depth := height - 1; depth >= 0; depth-- {
		role := root.At(depth)
		below := levels[depth+1]
		level := make([]T, tree.Width(depth))
		for i := range level {
			left, right := tree.Position{Depth: depth, Index: i}.Children()
			level[i] = combine(role, below[left.Index], below[right.Index])
		}
		levels[depth] = level
	}
	return levels, nil
}
