package game

import (
	"fmt"
	"strings"
)

// Role identifies the player to move at a given depth of the tree.
type Role bool

const (
	Maximizer Role = true
	Minimizer Role = false
)

// Opponent returns the role that moves at the next depth.
func (r Role) Opponent() Role {
	return !r
}

// At returns the role that moves at the given depth when r moves at the root.
func (r Role) At(depth int) Role {
	if depth%2 == 0 {
		return r
	}
	return r.Opponent()
}

func (r Role) String() string {
	if r == Maximizer {
		return "max"
	}
	return "min"
}

// ParseRole accepts "max", "maximizer", "min" or "minimizer" in any case.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximizer":
		return Maximizer, nil
	case "min", "minimizer":
		return Minimizer, nil
	}
	return Maximizer, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}
