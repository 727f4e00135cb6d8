package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
	"github.com/MissQuinn-dev/todo-frontend/internal/util"
)

// ToastKind selects the color and icon of a notification.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is one notification.
type Toast struct {
	ID   int
	Kind ToastKind
	Text string
}

func (k ToastKind) icon() string {
	switch k {
	case ToastSuccess:
		return "✓"
	case ToastError:
		return "✗"
	default:
		return "•"
	}
}

// RenderToasts stacks toasts vertically, oldest first, each at most width
// cells wide. It returns "" when there is nothing to show.
func RenderToasts(s *styles.Styles, toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	boxes := make([]string, 0, len(toasts))
	for _, t := range toasts {
		style := s.ToastInfo
		switch t.Kind {
		case ToastSuccess:
			style = s.ToastSuccess
		case ToastError:
			style = s.ToastError
		}
		inner := max(width-style.GetHorizontalFrameSize(), 1)
		text := util.TruncateANSI(t.Kind.icon()+" "+util.SingleLine(t.Text), inner)
		boxes = append(boxes, style.Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

// ToastTexts returns the text of each toast, for logs and tests.
func ToastTexts(toasts []Toast) string {
	texts := make([]string, len(toasts))
	for i, t := range toasts {
		texts[i] = t.Text
	}
	return strings.Join(texts, "\n")
}
