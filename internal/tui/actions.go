package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/msg"
)

// submit validates the focused form and, when it is valid, returns the
// create request. Invalid input shows inline messages and sends nothing.
func (m Model) submit() tea.Cmd {
	switch m.focus {
	case paneUserForm:
		f := m.userForm
		if f.Busy() {
			return nil
		}
		u, ok := f.ValidateUser()
		if !ok {
			return nil
		}
		f.SetBusy(true)
		m.logger.Debug("submitting user", "name", u.Name)
		return msg.CreateUser(m.ctx, m.svc, u)

	case paneTaskForm:
		f := m.taskForm
		if f.Busy() {
			return nil
		}
		t, ok := f.ValidateTask()
		if !ok {
			return nil
		}
		f.SetBusy(true)
		m.logger.Debug("submitting task", "name", t.Name, "points", t.Points)
		return msg.CreateTask(m.ctx, m.svc, t)
	}
	return nil
}

// openAssign shows the "Select User" menu for task, listing the users that
// came with the last task fetch.
func (m *Model) openAssign(task todo.Task) {
	m.assign = &assignState{task: task, users: m.index.Users()}
}

func (m *Model) confirmDeleteTask(task todo.Task) {
	m.confirm = &confirmState{
		prompt: board.ConfirmDeleteTask(task.Name),
		action: msg.DeleteTask(m.ctx, m.svc, task),
	}
}

func (m Model) applyFilter() {
	switch m.focus {
	case paneUsers:
		m.users.applyFilter()
	case paneTasks:
		m.tasks.applyFilter()
	}
}

func (m Model) cancelFilter() {
	switch m.focus {
	case paneUsers:
		m.users.cancelFilter()
	case paneTasks:
		m.tasks.cancelFilter()
	}
}
