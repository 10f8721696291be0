// Package game holds the players of a two player zero-sum game and the leaf
// scores they play over.
package game
