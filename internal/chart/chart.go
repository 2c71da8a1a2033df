// Package chart renders per-run performance scores as text bar charts.
package chart

import (
	"fmt"
	"math"
	"strings"
)

const (
	full  = "█"
	empty = "░"

	maxScore = 100
)

// Bar renders a 0-100 score as a bar of width cells. Out of range scores are clamped.
func Bar(score float64, width int) string {
	width = max(width, 1)

	filled := int(math.Round(score / maxScore * float64(width)))
	filled = min(max(filled, 0), width)

	return strings.Repeat(full, filled) + strings.Repeat(empty, width-filled)
}

// Pair renders before and after scores side by side, by position.
// Sequences of different lengths leave the missing side blank: position i is upload order, not a run identity.
func Pair(before, after []float64, width int) []string {
	count := max(len(before), len(after))
	lines := make([]string, 0, count)

	for idx := range count {
		lines = append(lines, fmt.Sprintf("#%d  before %s  after %s", idx+1, cell(before, idx, width), cell(after, idx, width)))
	}

	return lines
}

func cell(scores []float64, idx, width int) string {
	if idx >= len(scores) {
		return strings.Repeat(" ", max(width, 1)) + "      -"
	}

	return fmt.Sprintf("%s %6.2f", Bar(scores[idx], width), scores[idx])
}
