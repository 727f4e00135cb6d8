package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/table"
)

// pane identifies one of the four focusable areas, in tab order.
type pane int

const (
	paneUserForm pane = iota
	paneTaskForm
	paneUsers
	paneTasks
	paneCount
)

func (p pane) isForm() bool { return p == paneUserForm || p == paneTaskForm }

// loadState tracks a table's most recent fetch.
type loadState int

const (
	stateNotFetched loadState = iota
	stateLoading
	stateLoaded
	stateFailed
)

// paneText is the fixed wording of a table pane.
type paneText struct {
	title       string
	placeholder string
	empty       string
	loading     string
	failed      string
}

// tablePane is a table plus everything around it: fetch state, the filter
// box and the column that sort commands act on.
type tablePane[T any] struct {
	text       paneText
	table      *table.Table[T]
	filterKey  string
	filter     textinput.Model
	prevFilter string
	activeCol  int

	state loadState
	// hasData is set after the first successful fetch. Rows are kept when a
	// later fetch fails.
	hasData bool
	err     error
	// seq is the number of the newest request; older responses are dropped.
	seq int
}

func newTablePane[T any](cols []table.Column[T], pageSize int, filterKey string, text paneText) *tablePane[T] {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = text.placeholder
	ti.CharLimit = 100

	p := &tablePane[T]{
		text:      text,
		table:     table.New(cols, pageSize),
		filterKey: filterKey,
		filter:    ti,
	}
	p.activeCol = p.nextSortable(-1, 1)
	return p
}

// begin marks a new fetch in flight and returns its sequence number.
func (p *tablePane[T]) begin() int {
	p.seq++
	p.state = stateLoading
	return p.seq
}

// current reports whether seq is the newest fetch.
func (p *tablePane[T]) current(seq int) bool { return seq == p.seq }

// finish applies the response to fetch seq. It reports false when a newer
// fetch has started since, in which case nothing changes.
func (p *tablePane[T]) finish(seq int, rows []T, err error) bool {
	if !p.current(seq) {
		return false
	}
	if err != nil {
		p.state = stateFailed
		p.err = err
		return true
	}
	p.table.SetRows(rows)
	p.state = stateLoaded
	p.hasData = true
	p.err = nil
	return true
}

func (p *tablePane[T]) loading() bool { return p.state == stateLoading }

// activeKey is the key of the column sort commands act on.
func (p *tablePane[T]) activeKey() string {
	cols := p.table.Columns()
	if p.activeCol < 0 || p.activeCol >= len(cols) {
		return ""
	}
	return cols[p.activeCol].Key
}

// nextSortable returns the index of the next sortable column after from in
// direction dir, wrapping around. It returns from when none is sortable.
func (p *tablePane[T]) nextSortable(from, dir int) int {
	cols := p.table.Columns()
	n := len(cols)
	if n == 0 {
		return from
	}
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if cols[i].Sortable() {
			return i
		}
	}
	return from
}

func (p *tablePane[T]) moveSortColumn(dir int) {
	p.activeCol = p.nextSortable(p.activeCol, dir)
}

func (p *tablePane[T]) cycleSort() {
	p.table.CycleSort(p.activeKey())
}

// startFilter focuses the filter box and remembers the text to restore on
// cancel.
func (p *tablePane[T]) startFilter() tea.Cmd {
	p.prevFilter = p.filter.Value()
	p.filter.CursorEnd()
	return p.filter.Focus()
}

// updateFilter forwards a key to the filter box and refilters as the user
// types.
func (p *tablePane[T]) updateFilter(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.table.SetFilter(p.filterKey, p.filter.Value())
	return cmd
}

func (p *tablePane[T]) applyFilter() {
	p.filter.Blur()
}

func (p *tablePane[T]) cancelFilter() {
	p.filter.Blur()
	p.filter.SetValue(p.prevFilter)
	p.table.SetFilter(p.filterKey, p.prevFilter)
}

func (p *tablePane[T]) clearFilter() {
	p.filter.Reset()
	p.table.SetFilter(p.filterKey, "")
}

func (p *tablePane[T]) filtered() bool { return p.filter.Value() != "" }
