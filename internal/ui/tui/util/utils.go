package util

import (
	"github.com/mattn/go-runewidth"
)

const tail = "..."

// TruncateString cuts s to fit within maxWidth terminal cells, marking the cut with "..." when there is room for it
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= len(tail) {
		return runewidth.Truncate(s, max(maxWidth, 0), "")
	}
	return runewidth.Truncate(s, maxWidth, tail)
}

// FitWidth truncates or right pads s so that it fills exactly width cells
func FitWidth(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
