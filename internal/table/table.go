// Package table implements the row model behind the user and task grids:
// filtering on one column, single-column sorting, pagination and a row
// cursor. It knows nothing about rendering beyond column metadata.
package table

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"
)

// DefaultPageSize is used when a table is created with a non-positive size.
const DefaultPageSize = 10

// SortDir is the sort state of a column.
type SortDir int

const (
	SortNone SortDir = iota
	SortAsc
	SortDesc
)

// String returns a short label for the direction.
func (d SortDir) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// Indicator is the marker drawn next to a sorted column's title.
func (d SortDir) Indicator() string {
	switch d {
	case SortAsc:
		return "▲"
	case SortDesc:
		return "▼"
	default:
		return ""
	}
}

// next cycles none -> asc -> desc -> none.
func (d SortDir) next() SortDir {
	return (d + 1) % 3
}

// Column describes one column over rows of type T.
type Column[T any] struct {
	// Key identifies the column for filtering and sorting.
	Key   string
	Title string
	Align lipgloss.Position
	// Width is the minimum width in cells.
	Width int
	// Flex columns share whatever width is left after minimums.
	Flex bool
	// Value is the plain text of the cell, used for filtering and display.
	Value func(T) string
	// Compare orders two rows. Columns with a nil Compare are not sortable.
	Compare func(a, b T) int
}

// Sortable reports whether the column can be sorted.
func (c Column[T]) Sortable() bool { return c.Compare != nil }

// Table holds rows of type T plus the filter, sort and paging state applied
// to them.
type Table[T any] struct {
	columns []Column[T]
	rows    []T
	view    []T

	filterKey string
	filter    string
	match     func(string) bool

	sortKey string
	sortDir SortDir

	pageSize int
	cursor   int
}

// New creates an empty table over columns.
func New[T any](columns []Column[T], pageSize int) *Table[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Table[T]{
		columns:  columns,
		pageSize: pageSize,
		view:     []T{},
	}
}

// Columns returns the column definitions.
func (t *Table[T]) Columns() []Column[T] { return t.columns }

// SetColumns replaces the column definitions and re-applies filter and sort.
func (t *Table[T]) SetColumns(columns []Column[T]) {
	t.columns = columns
	t.refresh()
}

// Column returns the column with the given key.
func (t *Table[T]) Column(key string) (Column[T], bool) {
	for _, c := range t.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// SetRows replaces the data. Filter, sort and page are kept; the cursor is
// clamped to the new view.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = slices.Clone(rows)
	t.refresh()
}

// Rows returns every row regardless of filter.
func (t *Table[T]) Rows() []T { return t.rows }

// Total is the number of rows before filtering.
func (t *Table[T]) Total() int { return len(t.rows) }

// Len is the number of rows that pass the filter.
func (t *Table[T]) Len() int { return len(t.view) }

// SetFilter filters rows on the column named key. Matching is
// case-insensitive substring matching, or a whole-value glob match when
// text contains *, ? or [. A pattern that does not compile as a glob falls
// back to substring matching. An empty text clears the filter.
func (t *Table[T]) SetFilter(key, text string) {
	t.filterKey = key
	t.filter = text
	t.match = compileMatcher(text)
	t.refresh()
}

// Filter returns the active filter column and text.
func (t *Table[T]) Filter() (key, text string) { return t.filterKey, t.filter }

func compileMatcher(text string) func(string) bool {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}
	if strings.ContainsAny(needle, "*?[") {
		if g, err := glob.Compile(needle); err == nil {
			return func(v string) bool { return g.Match(strings.ToLower(v)) }
		}
	}
	return func(v string) bool { return strings.Contains(strings.ToLower(v), needle) }
}

// CycleSort advances the sort state of the column named key through
// none -> ascending -> descending -> none. Sorting a different column starts
// it at ascending. Unknown or unsortable columns leave the state unchanged.
func (t *Table[T]) CycleSort(key string) SortDir {
	col, ok := t.Column(key)
	if !ok || !col.Sortable() {
		return t.SortFor(key)
	}

	if t.sortKey != key {
		t.sortKey, t.sortDir = key, SortAsc
	} else {
		t.sortDir = t.sortDir.next()
		if t.sortDir == SortNone {
			t.sortKey = ""
		}
	}
	t.refresh()
	return t.sortDir
}

// SortFor returns the sort direction of the column named key.
func (t *Table[T]) SortFor(key string) SortDir {
	if key != "" && key == t.sortKey {
		return t.sortDir
	}
	return SortNone
}

// Sort returns the sorted column and direction. key is "" when unsorted.
func (t *Table[T]) Sort() (key string, dir SortDir) { return t.sortKey, t.sortDir }

func (t *Table[T]) refresh() {
	view := make([]T, 0, len(t.rows))
	var value func(T) string
	if col, ok := t.Column(t.filterKey); ok && t.match != nil {
		value = col.Value
	}
	for _, row := range t.rows {
		if value != nil && !t.match(value(row)) {
			continue
		}
		view = append(view, row)
	}

	if col, ok := t.Column(t.sortKey); ok && col.Sortable() && t.sortDir != SortNone {
		slices.SortStableFunc(view, func(a, b T) int {
			if t.sortDir == SortDesc {
				return col.Compare(b, a)
			}
			return col.Compare(a, b)
		})
	}

	t.view = view
	t.clampCursor()
}

func (t *Table[T]) clampCursor() {
	if t.cursor >= len(t.view) {
		t.cursor = len(t.view) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// PageSize returns the number of rows per page.
func (t *Table[T]) PageSize() int { return t.pageSize }

// SetPageSize changes the page size, keeping the cursor row visible.
func (t *Table[T]) SetPageSize(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	t.pageSize = n
}

// PageCount is the number of pages, at least 1.
func (t *Table[T]) PageCount() int {
	if len(t.view) == 0 {
		return 1
	}
	return (len(t.view) + t.pageSize - 1) / t.pageSize
}

// Page is the zero-based index of the page holding the cursor.
func (t *Table[T]) Page() int { return t.cursor / t.pageSize }

// CanNextPage reports whether a following page exists.
func (t *Table[T]) CanNextPage() bool { return t.Page() < t.PageCount()-1 }

// CanPrevPage reports whether a preceding page exists.
func (t *Table[T]) CanPrevPage() bool { return t.Page() > 0 }

// NextPage moves the cursor to the first row of the next page.
func (t *Table[T]) NextPage() bool {
	if !t.CanNextPage() {
		return false
	}
	t.cursor = (t.Page() + 1) * t.pageSize
	return true
}

// PrevPage moves the cursor to the first row of the previous page.
func (t *Table[T]) PrevPage() bool {
	if !t.CanPrevPage() {
		return false
	}
	t.cursor = (t.Page() - 1) * t.pageSize
	return true
}

// SetPage jumps to page n, clamped to the valid range.
func (t *Table[T]) SetPage(n int) {
	n = max(0, min(n, t.PageCount()-1))
	t.cursor = n * t.pageSize
	t.clampCursor()
}

// VisibleRows returns the rows on the current page.
func (t *Table[T]) VisibleRows() []T {
	start := t.Page() * t.pageSize
	if start >= len(t.view) {
		return nil
	}
	end := min(start+t.pageSize, len(t.view))
	return t.view[start:end]
}

// Cursor is the index of the selected row within the current page.
func (t *Table[T]) Cursor() int { return t.cursor - t.Page()*t.pageSize }

// MoveCursor moves the selection by delta rows across the whole filtered
// view, turning pages as needed.
func (t *Table[T]) MoveCursor(delta int) {
	t.cursor += delta
	t.clampCursor()
}

// Selected returns the row under the cursor.
func (t *Table[T]) Selected() (T, bool) {
	if len(t.view) == 0 {
		var zero T
		return zero, false
	}
	return t.view[t.cursor], true
}

// Select moves the cursor to the first row for which pred is true.
func (t *Table[T]) Select(pred func(T) bool) bool {
	for i, row := range t.view {
		if pred(row) {
			t.cursor = i
			return true
		}
	}
	return false
}
