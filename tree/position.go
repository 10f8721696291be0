package tree

import "fmt"

// Position addresses a node by its depth and its index within that depth.
type Position struct {
	Depth int
	Index int
}

var Root = Position{}

// Children returns the two nodes one level below p.
func (p Position) Children() (left, right Position) {
	left = Position{Depth: p.Depth + 1, Index: 2 * p.Index}
	right = Position{Depth: p.Depth + 1, Index: 2*p.Index + 1}
	return left, right
}

// IsLeaf reports whether p lies on the last level; its Index is then the
// index into the score sequence.
func (p Position) IsLeaf(height int) bool {
	return p.Depth == height
}

// Check reports ErrIndexOutOfRange when p is not a node of a tree of the given height.
func (p Position) Check(height int) error {
	if p.Depth < 0 || p.Depth > height {
		return fmt.Errorf("%w: depth %d outside 0..%d", ErrIndexOutOfRange, p.Depth, height)
	}
	if p.Index < 0 || p.Index >= Width(p.Depth) {
		return fmt.Errorf("%w: index %d outside 0..%d at depth %d",
			ErrIndexOutOfRange, p.Index, Width(p.Depth)-1, p.Depth)
	}
	return nil
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Depth, p.Index)
}
