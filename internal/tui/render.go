package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/keymap"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/view"
)

const maxToastWidth = 48

// helpBarCommands lists the hints shown at the bottom of the screen.
var helpBarCommands = map[keymap.Mode][]keymap.Command{
	keymap.ModeNormal: {
		keymap.CmdNextPane, keymap.CmdActivate, keymap.CmdDelete, keymap.CmdEnterFilter,
		keymap.CmdCycleSort, keymap.CmdNextPage, keymap.CmdRefresh, keymap.CmdToggleHelp, keymap.CmdQuit,
	},
	keymap.ModeForm: {
		keymap.CmdNextPane, keymap.CmdNextField, keymap.CmdSubmit, keymap.CmdResetForm,
		keymap.CmdToggleHelp, keymap.CmdQuit,
	},
	keymap.ModeFilter:  {keymap.CmdApplyFilter, keymap.CmdCancelFilter},
	keymap.ModeConfirm: {keymap.CmdConfirm, keymap.CmdCancel},
	keymap.ModeAssign:  {keymap.CmdMenuDown, keymap.CmdMenuUp, keymap.CmdConfirm, keymap.CmdCancel},
	keymap.ModeHelp:    {keymap.CmdToggleHelp},
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting " + AppTitle + "..."
	}

	s := m.styles
	bar := view.RenderHelpBar(s, m.keymap, m.mode(), helpBarCommands[m.mode()], m.width)

	if overlay := m.renderOverlay(); overlay != "" {
		return view.PlaceOverlay(overlay, m.width, m.height-1) + "\n" + bar
	}

	cols := view.Split(m.width, 2)
	parts := []string{view.RenderHeader(s, AppTitle, m.subtitle, m.width)}
	if toasts := view.RenderToasts(s, m.toasts.items, min(m.width, maxToastWidth)); toasts != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toasts))
	}
	parts = append(parts,
		view.SideBySide(
			m.renderForm(paneUserForm, cols[0]),
			m.renderForm(paneTaskForm, cols[1]),
		),
		view.SideBySide(
			renderTablePane(m, m.users, paneUsers, cols[0], m.userCell),
			renderTablePane(m, m.tasks, paneTasks, cols[1], m.taskCell),
		),
		bar,
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderOverlay() string {
	switch {
	case m.showHelp:
		helpMode := keymap.ModeNormal
		if m.focus.isForm() {
			helpMode = keymap.ModeForm
		}
		return view.RenderHelp(m.styles, m.keymap, helpMode, m.width)

	case m.confirm != nil:
		return view.RenderConfirm(m.styles, m.confirm.prompt, m.width)

	case m.assign != nil:
		names := make([]string, len(m.assign.users))
		for i, u := range m.assign.users {
			names[i] = u.Name
		}
		return view.RenderMenu(m.styles, board.AssignMenuTitle, names, m.assign.cursor, board.NoUsers, m.width)
	}
	return ""
}

func (m Model) renderForm(p pane, width int) string {
	f := m.userForm
	if p == paneTaskForm {
		f = m.taskForm
	}
	title := fmt.Sprintf("%d %s", int(p)+1, f.Title)
	body := f.View(m.styles, view.PaneInnerWidth(m.styles, width))
	return view.RenderPane(m.styles, title, body, width, m.focus == p)
}

func renderTablePane[T any](m Model, p *tablePane[T], id pane, width int, cell func(string, T, string) string) string {
	s := m.styles
	inner := view.PaneInnerWidth(s, width)
	focused := m.focus == id

	title := fmt.Sprintf("%d %s", int(id)+1, p.text.title)
	if p.loading() && p.hasData {
		title += " " + m.spinner.View()
	}

	var lines []string
	switch {
	case focused && m.filtering:
		fi := p.filter
		fi.Width = max(inner-lipgloss.Width(fi.Prompt)-1, 1)
		fi.PromptStyle = s.FilterPrompt
		lines = append(lines, fi.View())
	case p.filtered():
		title += "  " + s.FilterPrompt.Render("/ "+p.filter.Value())
	}

	switch {
	case !p.hasData && p.state == stateFailed:
		lines = append(lines, s.InlineError.Render(failureText(p.text.failed, p.err)),
			s.Muted.Render("Press r to retry"))
	case !p.hasData:
		lines = append(lines, m.spinner.View()+" "+s.Muted.Render(p.text.loading))
	default:
		lines = append(lines, view.RenderTable(s, p.table, view.TableState[T]{
			Width:        inner,
			Focused:      focused,
			ActiveColumn: p.activeKey(),
			Empty:        p.text.empty,
			Cell:         cell,
		}))
		if p.state == stateFailed {
			lines = append(lines, s.InlineError.Render(failureText(p.text.failed, p.err)))
		}
	}

	return view.RenderPane(s, title, strings.Join(lines, "\n"), width, focused)
}

// failureText is the inline error line of a table, with the HTTP status
// when the backend answered.
func failureText(summary string, err error) string {
	if code := errors.StatusCode(err); code > 0 {
		return fmt.Sprintf("%s (HTTP %d)", summary, code)
	}
	return summary
}

func (m Model) userCell(key string, _ todo.User, text string) string {
	if key == board.ColActions {
		return m.styles.ActionDelete.Render(text)
	}
	return m.styles.Row.Render(text)
}

func (m Model) taskCell(key string, t todo.Task, text string) string {
	switch key {
	case board.ColUser:
		if board.NeedsAssign(t, m.index) {
			return m.styles.AssignControl.Render(text)
		}
	case board.ColActions:
		if board.ActionFor(t, m.index) == board.ActionComplete {
			return m.styles.ActionComplete.Render(text)
		}
		return m.styles.ActionDelete.Render(text)
	}
	return m.styles.Row.Render(text)
}
