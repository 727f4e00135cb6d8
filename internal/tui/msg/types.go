package msg

import (
	"github.com/MissQuinn-dev/todo-frontend/internal/api"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

// Scope names the collections a refetch covers.
type Scope uint8

const (
	// ScopeUsers is the users table.
	ScopeUsers Scope = 1 << iota
	// ScopeTasks is the tasks table together with its user index.
	ScopeTasks

	ScopeNone Scope = 0
	ScopeAll        = ScopeUsers | ScopeTasks
)

// Has reports whether s covers every collection in other.
func (s Scope) Has(other Scope) bool { return other != 0 && s&other == other }

// String lists the covered collections.
func (s Scope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeUsers:
		return "users"
	case ScopeTasks:
		return "tasks"
	case ScopeAll:
		return "users+tasks"
	default:
		return "unknown"
	}
}

// UsersLoadedMsg carries the result of a users fetch. Seq identifies the
// request so that a stale response can be dropped.
type UsersLoadedMsg struct {
	Seq   int
	Users []todo.User
	Err   error
}

// BoardLoadedMsg carries the result of the tasks table's combined fetch.
type BoardLoadedMsg struct {
	Seq   int
	Board api.Board
	Err   error
}

// Op identifies a mutation.
type Op int

const (
	OpCreateUser Op = iota
	OpCreateTask
	OpAssignTask
	OpDeleteTask
	OpDeleteUser
)

// String returns the operation name used in logs.
func (o Op) String() string {
	switch o {
	case OpCreateUser:
		return "create_user"
	case OpCreateTask:
		return "create_task"
	case OpAssignTask:
		return "assign_task"
	case OpDeleteTask:
		return "delete_task"
	case OpDeleteUser:
		return "delete_user"
	default:
		return "unknown"
	}
}

// MutationMsg reports a finished create, assign or delete.
type MutationMsg struct {
	Op Op
	// Text is the notification: the success message, or the failure
	// summary when Err is set.
	Text string
	// Refetch is what the mutation invalidated. It is ScopeNone on failure.
	Refetch Scope
	Err     error
}

// ToastExpiredMsg removes the notification with the given ID.
type ToastExpiredMsg struct {
	ID int
}

// ThemeChangedMsg is sent when the config file names a new theme.
type ThemeChangedMsg struct {
	Theme string
}
