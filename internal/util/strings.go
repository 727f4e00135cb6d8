// Package util provides shared string helpers for terminal rendering.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to truncated cell content.
const Ellipsis = "…"

// TruncateANSI truncates s to maxWidth visual columns, ending in an ellipsis
// when it had to cut. Escape sequences and wide characters are accounted for.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return Ellipsis
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// FitCell truncates s to width and pads it to exactly width columns using
// the given horizontal alignment.
func FitCell(s string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	s = TruncateANSI(s, width)
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}

	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", gap) + s
	case lipgloss.Center:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// SingleLine collapses newlines and tabs so a value fits in one table row.
func SingleLine(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
	return strings.TrimSpace(s)
}
