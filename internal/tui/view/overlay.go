package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
	"github.com/MissQuinn-dev/todo-frontend/internal/util"
)

const modalMaxWidth = 56

// RenderConfirm renders a yes/no prompt.
func RenderConfirm(s *styles.Styles, prompt string, width int) string {
	inner := modalInner(s, width)
	body := s.Text.Render(util.TruncateANSI(prompt, inner)) + "\n\n" +
		s.HelpKey.Render("[y]") + s.HelpDesc.Render(" Yes   ") +
		s.HelpKey.Render("[n]") + s.HelpDesc.Render(" No")
	return s.Modal.Render(body)
}

// RenderMenu renders a titled list with the cursor item highlighted. When
// items is empty the empty text is shown instead.
func RenderMenu(s *styles.Styles, title string, items []string, cursor int, empty string, width int) string {
	inner := modalInner(s, width)
	itemWidth := max(inner-s.MenuItem.GetHorizontalFrameSize(), 1)

	var b strings.Builder
	b.WriteString(s.ModalTitle.Render(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(s.EmptyRow.Render(empty))
		return s.Modal.Render(b.String())
	}

	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		text := util.FitCell(util.SingleLine(item), itemWidth, lipgloss.Left)
		if i == cursor {
			b.WriteString(s.MenuItemSelected.Render(text))
		} else {
			b.WriteString(s.MenuItem.Render(text))
		}
	}
	return s.Modal.Render(b.String())
}

func modalInner(s *styles.Styles, width int) int {
	w := min(width, modalMaxWidth)
	return max(w-s.Modal.GetHorizontalFrameSize(), 8)
}
