package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/input"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/msg"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/view"
)

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		// Let the tick chain die once nothing is loading; refetch restarts it.
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case msg.UsersLoadedMsg:
		return m.handleUsersLoaded(message)

	case msg.BoardLoadedMsg:
		return m.handleBoardLoaded(message)

	case msg.MutationMsg:
		return m.handleMutation(message)

	case msg.ToastExpiredMsg:
		m.toasts.expire(message.ID)
		return m, nil

	case msg.ThemeChangedMsg:
		return m.handleThemeChanged(message)
	}

	// Cursor blinks and other widget messages go to whatever has focus.
	return m, m.forwardToFocused(message)
}

func (m Model) forwardToFocused(message tea.Msg) tea.Cmd {
	if m.filtering {
		switch m.focus {
		case paneUsers:
			return m.users.updateFilter(message)
		case paneTasks:
			return m.tasks.updateFilter(message)
		}
	}
	if f := m.focusedForm(); f != nil {
		return f.Update(message)
	}
	return nil
}

func (m Model) handleUsersLoaded(res msg.UsersLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.users.finish(res.Seq, res.Users, res.Err) {
		m.logger.Debug("dropping stale response", "table", "users", "seq", res.Seq)
		return m, nil
	}
	if res.Err != nil {
		m.logger.Failure("fetch failed", res.Err, "table", "users")
		return m, m.toast(view.ToastError, board.MsgLoadUsersFailed)
	}
	m.logger.Debug("users loaded", "count", len(res.Users))
	return m, nil
}

func (m Model) handleBoardLoaded(res msg.BoardLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.tasks.current(res.Seq) {
		m.logger.Debug("dropping stale response", "table", "tasks", "seq", res.Seq)
		return m, nil
	}
	if res.Err != nil {
		m.tasks.finish(res.Seq, nil, res.Err)
		m.logger.Failure("fetch failed", res.Err, "table", "tasks")
		return m, m.toast(view.ToastError, board.MsgLoadTasksFailed)
	}

	// The assignee columns close over the index, so swap both together.
	m.index = board.NewUserIndex(res.Board.Users)
	m.tasks.table.SetColumns(board.TaskColumns(m.index))
	m.tasks.finish(res.Seq, res.Board.Tasks, nil)
	m.logger.Debug("tasks loaded", "tasks", len(res.Board.Tasks), "users", len(res.Board.Users))
	return m, nil
}

func (m Model) handleMutation(res msg.MutationMsg) (tea.Model, tea.Cmd) {
	var form *input.Form
	switch res.Op {
	case msg.OpCreateUser:
		form = m.userForm
	case msg.OpCreateTask:
		form = m.taskForm
	}

	if res.Err != nil {
		m.logger.Failure("request failed", res.Err, "op", res.Op.String())
		if form != nil {
			form.SetBusy(false)
		}
		return m, m.toast(view.ToastError, res.Text)
	}

	m.logger.Info("request succeeded", "op", res.Op.String(), "refetch", res.Refetch.String())
	cmds := []tea.Cmd{m.toast(view.ToastSuccess, res.Text), m.refetch(res.Refetch)}
	if form != nil {
		cmd := form.Reset()
		if m.focusedForm() == form {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleThemeChanged(change msg.ThemeChangedMsg) (tea.Model, tea.Cmd) {
	if change.Theme == m.theme {
		return m, nil
	}
	st, err := styles.Load(change.Theme)
	if err != nil {
		m.logger.Warn("theme reload failed", "theme", change.Theme, "error", err)
		return m, m.toast(view.ToastError, "Failed to load theme "+change.Theme)
	}
	m.styles = st
	m.theme = change.Theme
	m.spinner.Style = st.Spinner
	m.logger.Info("theme changed", "theme", change.Theme)
	return m, m.toast(view.ToastInfo, "Theme: "+change.Theme)
}
