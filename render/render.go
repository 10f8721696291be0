// Package render lays a score sequence out level by level for display.
package render

import (
	"fmt"
	"math/bits"
	"minimax/game"
	"strings"
)

// Flat groups the sequence itself into levels: level L takes the next 2^L
// scores, so the last level may be partial. Rows are indented and spaced by
// 2^(height-L) columns.
func Flat[T any](scores []T) []string {
	if len(scores) == 0 {
		return nil
	}
	height := bits.Len(uint(len(scores))) - 1

	lines := []string{}
	for level, index := 0, 0; index < len(scores); level++ {
		end := min(index+1<<level, len(scores))
		tokens := make([]string, 0, end-index)
		for _, s := range scores[index:end] {
			tokens = append(tokens, fmt.Sprintf("%2s", game.FormatScore(s)))
		}
		spacing := strings.Repeat(" ", 1<<max(height-level, 0))
		lines = append(lines, spacing+strings.Join(tokens, spacing))
		index = end
	}
	return lines
}

// Tree draws one row per depth of a fully evaluated tree, such as the output
// of searcher.Levels: row L holds the 2^L node values at depth L, each
// centered above its two children.
func Tree[T any](levels [][]T) []string {
	tokens := make([][]string, len(levels))
	width := 1
	for depth, level := range levels {
		tokens[depth] = make([]string, len(level))
		for i, v := range level {
			tokens[depth][i] = game.FormatScore(v)
			width = max(width, len(tokens[depth][i]))
		}
	}

	height := len(levels) - 1
	lines := make([]string, 0, len(levels))
	for depth, row := range tokens {
		slot := (width + 1) << (height - depth)
		var sb strings.Builder
		for _, token := range row {
			pad := slot - len(token)
			sb.WriteString(strings.Repeat(" ", pad/2))
			sb.WriteString(token)
			sb.WriteString(strings.Repeat(" ", pad-pad/2))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}

func String(lines []string) string {
	return strings.Join(lines, "\n")
}
