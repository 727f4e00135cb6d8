package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/table"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
	"github.com/MissQuinn-dev/todo-frontend/internal/util"
)

const (
	columnGap   = 2
	markerWidth = 2
	cursorMark  = "› "
)

// TableState holds what RenderTable needs besides the table itself.
type TableState[T any] struct {
	// Width is the content width available to the table.
	Width int

	// Focused draws the cursor row and the active column highlight.
	Focused bool

	// ActiveColumn is the key of the column that sort commands act on.
	ActiveColumn string

	// Empty is the text of the single row shown when no row passes the
	// filter, e.g. "No tasks found."
	Empty string

	// Cell styles an already fitted cell. When nil, cells use the row style.
	Cell func(key string, row T, text string) string
}

// RenderTable renders the header, the current page of rows and a pager.
// The output always has PageSize rows so the pane keeps its height while
// paging.
func RenderTable[T any](s *styles.Styles, t *table.Table[T], st TableState[T]) string {
	cols := t.Columns()
	widths := table.Widths(cols, st.Width-markerWidth, columnGap)
	gap := strings.Repeat(" ", columnGap)

	lineWidth := markerWidth + columnGap*max(len(cols)-1, 0)
	for _, w := range widths {
		lineWidth += w
	}

	lines := make([]string, 0, t.PageSize()+2)

	header := make([]string, len(cols))
	for i, c := range cols {
		title := c.Title
		if ind := t.SortFor(c.Key).Indicator(); ind != "" {
			title += " " + ind
		}
		style := s.TableHeader
		if st.Focused && c.Key == st.ActiveColumn {
			style = s.TableHeaderActive
		}
		header[i] = style.Render(util.FitCell(title, widths[i], c.Align))
	}
	lines = append(lines, strings.Repeat(" ", markerWidth)+strings.Join(header, gap))

	rows := t.VisibleRows()
	if len(rows) == 0 {
		lines = append(lines, s.EmptyRow.Render(util.FitCell(st.Empty, lineWidth, lipgloss.Center)))
	}

	for i, row := range rows {
		selected := st.Focused && i == t.Cursor()
		cells := make([]string, len(cols))
		for j, c := range cols {
			text := util.FitCell(util.SingleLine(c.Value(row)), widths[j], c.Align)
			switch {
			case selected:
				cells[j] = text
			case st.Cell != nil:
				cells[j] = st.Cell(c.Key, row, text)
			default:
				cells[j] = s.Row.Render(text)
			}
		}
		line := strings.Join(cells, gap)
		if selected {
			lines = append(lines, s.RowSelected.Render(cursorMark+line))
		} else {
			lines = append(lines, strings.Repeat(" ", markerWidth)+line)
		}
	}

	for n := max(len(rows), 1); n < t.PageSize(); n++ {
		lines = append(lines, "")
	}

	lines = append(lines, renderPager(s, t))
	return strings.Join(lines, "\n")
}

func renderPager[T any](s *styles.Styles, t *table.Table[T]) string {
	prev, next := " ", " "
	if t.CanPrevPage() {
		prev = "‹"
	}
	if t.CanNextPage() {
		next = "›"
	}

	text := fmt.Sprintf("Page %d of %d", t.Page()+1, t.PageCount())
	if t.Len() != t.Total() {
		text += fmt.Sprintf(" · %d of %d rows", t.Len(), t.Total())
	} else {
		text += fmt.Sprintf(" · %d rows", t.Len())
	}
	return s.Pager.Render(prev + " " + text + " " + next)
}
