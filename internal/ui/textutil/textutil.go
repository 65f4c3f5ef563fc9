// Package textutil provides unicode-aware column fitting for TUI tables.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight left-aligns s in exactly width columns, truncating when too wide.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s in exactly width columns, truncating when too wide.
func PadLeft(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillLeft(s, width)
}
