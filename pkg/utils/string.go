package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// NormalizeWhitespace replaces runs of whitespace with single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most width display columns, appending an
// ellipsis when cut. CJK characters count as two columns.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "...")
}
