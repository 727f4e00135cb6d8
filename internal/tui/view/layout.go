package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
	"github.com/MissQuinn-dev/todo-frontend/internal/util"
)

// RenderHeader renders the title bar across width.
func RenderHeader(s *styles.Styles, title, subtitle string, width int) string {
	line := title
	if subtitle != "" {
		line += "  " + s.Subtitle.Render(subtitle)
	}
	return s.Header.Width(max(width, 1)).Render(util.TruncateANSI(line, max(width, 1)))
}

// PaneInnerWidth is the content width of a pane whose outer width is width.
func PaneInnerWidth(s *styles.Styles, width int) int {
	return max(width-s.Pane.GetHorizontalFrameSize(), 1)
}

// RenderPane draws body in a bordered box of outer width width, with the
// title on the first line. The focused pane uses the primary color.
func RenderPane(s *styles.Styles, title, body string, width int, focused bool) string {
	box, titleStyle := s.Pane, s.PaneTitle
	if focused {
		box, titleStyle = s.PaneFocused, s.PaneTitleFocused
	}

	inner := PaneInnerWidth(s, width)
	content := titleStyle.Render(util.TruncateANSI(title, inner)) + "\n" + body
	return box.Width(max(width-box.GetHorizontalBorderSize(), 1)).Render(content)
}

// PlaceOverlay centers box over a width x height area. The background is
// replaced rather than blended.
func PlaceOverlay(box string, width, height int) string {
	return lipgloss.Place(max(width, lipgloss.Width(box)), max(height, lipgloss.Height(box)),
		lipgloss.Center, lipgloss.Center, box)
}

// SideBySide joins blocks horizontally with a one-cell gap.
func SideBySide(blocks ...string) string {
	parts := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Split divides width into n columns separated by one cell, giving any
// remainder to the leftmost columns.
func Split(width, n int) []int {
	if n <= 0 {
		return nil
	}
	avail := max(width-(n-1), n)
	out := make([]int, n)
	for i := range out {
		out[i] = avail / n
		if i < avail%n {
			out[i]++
		}
	}
	return out
}

// Lines counts the lines in s.
func Lines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
