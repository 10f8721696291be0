// Package tree addresses an implicit complete binary tree whose leaves are
// stored as a flat sequence. Nodes are never allocated: a node is a depth and
// a heap-style index, and the children of index i are 2i and 2i+1.
package tree

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxHeight keeps 1<<height representable as an int.
const MaxHeight = bits.UintSize - 2

var (
	ErrInvalidInput    = errors.New("tree: sequence length must be a positive power of two")
	ErrIndexOutOfRange = errors.New("tree: node index out of range")
)

// Mode decides how a length that is not a power of two is handled.
type Mode int

const (
	// Strict rejects lengths that are not a power of two.
	Strict Mode = iota
	// Truncate rounds the height down and ignores the trailing leaves.
	Truncate
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Truncate:
		return "truncate"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Height returns log2(length) and fails unless length is a positive power of two.
func Height(length int) (int, error) {
	return HeightOf(length, Strict)
}

// HeightOf returns the height of the tree stored in a sequence of the given length.
func HeightOf(length int, mode Mode) (int, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%w: got length %d", ErrInvalidInput, length)
	}
	if mode == Strict && !IsPowerOfTwo(length) {
		return 0, fmt.Errorf("%w: got length %d", ErrInvalidInput, length)
	}
	return bits.Len(uint(length)) - 1, nil
}

// Leaves returns the number of leaves of a tree of the given height.
func Leaves(height int) int {
	return Width(height)
}

// Width returns the number of nodes at the given depth.
func Width(depth int) int {
	return 1 << depth
}

// Validate checks once, up front, that a sequence of the given length holds
// exactly the 2^height leaves of a tree of the given height.
func Validate(length, height int) error {
	if height < 0 || height > MaxHeight {
		return fmt.Errorf("%w: height %d outside 0..%d", ErrInvalidInput, height, MaxHeight)
	}
	if length != Leaves(height) {
		return fmt.Errorf("%w: height %d needs %d leaves, sequence has %d",
			ErrInvalidInput, height, Leaves(height), length)
	}
	return nil
}
