package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/keymap"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/msg"
)

// handleKeypress processes keyboard input
func (m Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode()
	cmd, bound := m.keymap.GetBinding(key, mode)

	if cmd == keymap.CmdQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch mode {
	case keymap.ModeHelp:
		if cmd == keymap.CmdToggleHelp {
			m.showHelp = false
		}
		return m, nil

	case keymap.ModeConfirm:
		return m.handleConfirmKey(cmd)

	case keymap.ModeAssign:
		return m.handleAssignKey(cmd)

	case keymap.ModeFilter:
		return m.handleFilterKey(key, cmd, bound)

	case keymap.ModeForm:
		return m.handleFormKey(key, cmd, bound)
	}

	if !bound {
		return m, nil
	}
	return m.handleNormalCommand(key, cmd)
}

func (m Model) handleConfirmKey(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdConfirm:
		action := m.confirm.action
		m.confirm = nil
		return m, action
	case keymap.CmdCancel:
		m.confirm = nil
	}
	return m, nil
}

func (m Model) handleAssignKey(cmd keymap.Command) (tea.Model, tea.Cmd) {
	a := m.assign
	switch cmd {
	case keymap.CmdMenuDown:
		if a.cursor < len(a.users)-1 {
			a.cursor++
		}
	case keymap.CmdMenuUp:
		if a.cursor > 0 {
			a.cursor--
		}
	case keymap.CmdConfirm:
		m.assign = nil
		if len(a.users) == 0 {
			return m, nil
		}
		return m, msg.AssignTask(m.ctx, m.svc, a.task, a.users[a.cursor])
	case keymap.CmdCancel:
		m.assign = nil
	}
	return m, nil
}

func (m Model) handleFilterKey(key tea.KeyMsg, cmd keymap.Command, bound bool) (tea.Model, tea.Cmd) {
	if bound {
		switch cmd {
		case keymap.CmdApplyFilter:
			m.filtering = false
			m.applyFilter()
			return m, nil
		case keymap.CmdCancelFilter:
			m.filtering = false
			m.cancelFilter()
			return m, nil
		}
	}
	return m, m.forwardToFocused(key)
}

func (m Model) handleFormKey(key tea.KeyMsg, cmd keymap.Command, bound bool) (tea.Model, tea.Cmd) {
	f := m.focusedForm()
	if !bound {
		return m, f.Update(key)
	}

	switch cmd {
	case keymap.CmdNextPane:
		c := m.setFocus(m.focus + 1)
		return m, c
	case keymap.CmdPrevPane:
		c := m.setFocus(m.focus - 1)
		return m, c
	case keymap.CmdNextField:
		return m, f.NextField()
	case keymap.CmdPrevField:
		return m, f.PrevField()
	case keymap.CmdResetForm:
		if f.Busy() {
			return m, nil
		}
		return m, f.Reset()
	case keymap.CmdSubmit:
		return m, m.submit()
	case keymap.CmdToggleHelp:
		m.showHelp = true
		return m, nil
	}
	return m, f.Update(key)
}

func (m Model) handleNormalCommand(key tea.KeyMsg, cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdNextPane:
		c := m.setFocus(m.focus + 1)
		return m, c
	case keymap.CmdPrevPane:
		c := m.setFocus(m.focus - 1)
		return m, c
	case keymap.CmdFocusPane:
		if len(key.Runes) == 1 {
			c := m.setFocus(pane(key.Runes[0] - '1'))
			return m, c
		}
		return m, nil
	case keymap.CmdToggleHelp:
		m.showHelp = true
		return m, nil
	case keymap.CmdRefresh:
		return m, m.refetch(msg.ScopeAll)
	}

	switch m.focus {
	case paneUsers:
		return m.handleUsersCommand(cmd)
	case paneTasks:
		return m.handleTasksCommand(cmd)
	}
	return m, nil
}

// tableCommand applies the commands every table shares. It reports false
// for commands that are specific to one table.
func tableCommand[T any](p *tablePane[T], cmd keymap.Command) (tea.Cmd, bool) {
	switch cmd {
	case keymap.CmdCursorDown:
		p.table.MoveCursor(1)
	case keymap.CmdCursorUp:
		p.table.MoveCursor(-1)
	case keymap.CmdNextPage:
		p.table.NextPage()
	case keymap.CmdPrevPage:
		p.table.PrevPage()
	case keymap.CmdFirstPage:
		p.table.SetPage(0)
	case keymap.CmdLastPage:
		p.table.SetPage(p.table.PageCount() - 1)
	case keymap.CmdNextSortColumn:
		p.moveSortColumn(1)
	case keymap.CmdPrevSortColumn:
		p.moveSortColumn(-1)
	case keymap.CmdCycleSort:
		p.cycleSort()
	case keymap.CmdClearFilter:
		p.clearFilter()
	case keymap.CmdEnterFilter:
		return p.startFilter(), true
	default:
		return nil, false
	}
	return nil, true
}

func (m Model) handleUsersCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	if c, ok := tableCommand(m.users, cmd); ok {
		m.filtering = cmd == keymap.CmdEnterFilter
		return m, c
	}

	switch cmd {
	case keymap.CmdActivate, keymap.CmdDelete:
		user, ok := m.users.table.Selected()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmState{
			prompt: board.ConfirmDeleteUser(user.Name),
			action: msg.DeleteUser(m.ctx, m.svc, user),
		}
	}
	return m, nil
}

func (m Model) handleTasksCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	if c, ok := tableCommand(m.tasks, cmd); ok {
		m.filtering = cmd == keymap.CmdEnterFilter
		return m, c
	}

	task, ok := m.tasks.table.Selected()
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdActivate:
		if board.NeedsAssign(task, m.index) {
			m.openAssign(task)
		} else {
			m.confirmDeleteTask(task)
		}
	case keymap.CmdAssign:
		if board.NeedsAssign(task, m.index) {
			m.openAssign(task)
		}
	case keymap.CmdDelete:
		m.confirmDeleteTask(task)
	}
	return m, nil
}
