package msg

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MissQuinn-dev/todo-frontend/internal/api"
	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/form"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

// FetchUsers loads the users table.
func FetchUsers(ctx context.Context, svc api.Service, seq int) tea.Cmd {
	return func() tea.Msg {
		users, err := svc.ListUsers(ctx)
		return UsersLoadedMsg{Seq: seq, Users: users, Err: err}
	}
}

// FetchBoard loads tasks and users for the tasks table.
func FetchBoard(ctx context.Context, svc api.Service, seq int) tea.Cmd {
	return func() tea.Msg {
		b, err := svc.FetchBoard(ctx)
		return BoardLoadedMsg{Seq: seq, Board: b, Err: err}
	}
}

func mutation(op Op, success, failure string, scope Scope, err error) MutationMsg {
	if err != nil {
		return MutationMsg{Op: op, Text: failure, Err: err}
	}
	return MutationMsg{Op: op, Text: success, Refetch: scope}
}

// CreateUser submits a validated create-user form. A new user shows up in
// both tables (as a row and as an assign target).
func CreateUser(ctx context.Context, svc api.Service, u form.User) tea.Cmd {
	return func() tea.Msg {
		created, err := svc.CreateUser(ctx, u.Name)
		return mutation(OpCreateUser, board.UserCreatedMsg(created.Label()), board.MsgCreateUserFailed, ScopeAll, err)
	}
}

// CreateTask submits a validated create-task form. New tasks are
// unassigned, so user totals do not change.
func CreateTask(ctx context.Context, svc api.Service, t form.Task) tea.Cmd {
	return func() tea.Msg {
		created, err := svc.CreateTask(ctx, t.Name, t.Points)
		return mutation(OpCreateTask, board.TaskCreatedMsg(created.Label()), board.MsgCreateTaskFailed, ScopeTasks, err)
	}
}

// AssignTask assigns task to user.
func AssignTask(ctx context.Context, svc api.Service, task todo.Task, user todo.User) tea.Cmd {
	return func() tea.Msg {
		err := svc.AssignTask(ctx, task.ID, todo.AssignedTo(user.ID))
		return mutation(OpAssignTask, board.AssignedMsg(user.Name), board.MsgAssignFailed, ScopeAll, err)
	}
}

// DeleteTask deletes or completes task. Only an assigned task affects the
// users table.
func DeleteTask(ctx context.Context, svc api.Service, task todo.Task) tea.Cmd {
	scope := ScopeTasks
	if task.Assignee.IsAssigned() {
		scope = ScopeAll
	}
	return func() tea.Msg {
		err := svc.DeleteTask(ctx, task.ID)
		return mutation(OpDeleteTask, board.DeletedTaskMsg(task.Name), board.MsgDeleteTaskFailed, scope, err)
	}
}

// DeleteUser deletes user.
func DeleteUser(ctx context.Context, svc api.Service, user todo.User) tea.Cmd {
	return func() tea.Msg {
		err := svc.DeleteUser(ctx, user.ID)
		return mutation(OpDeleteUser, board.DeletedUserMsg(user.Name), board.MsgDeleteUserFailed, ScopeAll, err)
	}
}

// ExpireToast returns a command that removes notification id after d.
func ExpireToast(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}
