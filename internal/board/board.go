// Package board defines the user and task column sets and the rules that
// decide how a task row is presented: whether it shows its assignee or the
// assign control, and whether its action completes or deletes it.
package board

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/table"
	"github.com/MissQuinn-dev/todo-frontend/internal/todo"
)

// Column keys.
const (
	ColUserName    = "name"
	ColTotalPoints = "totalPoints"
	ColTaskCount   = "taskCount"
	ColActions     = "actions"

	ColTaskName = "name"
	ColPoints   = "points"
	ColUserID   = "user_id"
	ColUser     = "user"
)

// Labels for the inline controls.
const (
	AssignLabel     = "Assign to ▾"
	AssignMenuTitle = "Select User"
	NoUsers         = "No users found."
	NoTasks         = "No tasks found."
)

// UserIndex resolves task assignees to users.
type UserIndex struct {
	byID  map[int]todo.User
	users []todo.User
}

// NewUserIndex indexes users by ID. The order of users is kept for menus.
func NewUserIndex(users []todo.User) UserIndex {
	byID := make(map[int]todo.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return UserIndex{byID: byID, users: users}
}

// Resolve returns the user a task is assigned to. An unassigned ref never
// resolves, even if a user with ID 0 was fetched.
func (ix UserIndex) Resolve(ref todo.UserRef) (todo.User, bool) {
	id, ok := ref.ID()
	if !ok {
		return todo.User{}, false
	}
	u, found := ix.byID[id]
	return u, found
}

// Lookup returns the user with the given ID.
func (ix UserIndex) Lookup(id int) (todo.User, bool) {
	u, ok := ix.byID[id]
	return u, ok
}

// Users returns the indexed users in fetch order.
func (ix UserIndex) Users() []todo.User { return ix.users }

// Len is the number of indexed users.
func (ix UserIndex) Len() int { return len(ix.users) }

// TaskAction is the row action offered for a task.
type TaskAction int

const (
	// ActionDelete removes an unassigned task.
	ActionDelete TaskAction = iota
	// ActionComplete removes an assigned task; it is styled as a success.
	ActionComplete
)

// Label is the button text.
func (a TaskAction) Label() string {
	if a == ActionComplete {
		return "Complete"
	}
	return "Delete"
}

// ActionFor is Complete when the task's assignee is among the fetched
// users and Delete otherwise.
func ActionFor(task todo.Task, ix UserIndex) TaskAction {
	if _, ok := ix.Resolve(task.Assignee); ok {
		return ActionComplete
	}
	return ActionDelete
}

// NeedsAssign reports whether the "User" cell shows the assign control
// instead of a name.
func NeedsAssign(task todo.Task, ix UserIndex) bool {
	_, ok := ix.Resolve(task.Assignee)
	return !ok
}

// AssigneeName is the text of the "User" cell.
func AssigneeName(task todo.Task, ix UserIndex) string {
	if u, ok := ix.Resolve(task.Assignee); ok {
		return u.Name
	}
	return AssignLabel
}

func compareFold(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}

// UserColumns is the column set of the users table.
func UserColumns() []table.Column[todo.User] {
	return []table.Column[todo.User]{
		{
			Key:     ColUserName,
			Title:   "User Name",
			Width:   10,
			Flex:    true,
			Value:   func(u todo.User) string { return u.Name },
			Compare: func(a, b todo.User) int { return compareFold(a.Name, b.Name) },
		},
		{
			Key:     ColTotalPoints,
			Title:   "Total Points",
			Align:   lipgloss.Right,
			Width:   12,
			Value:   func(u todo.User) string { return strconv.Itoa(u.TotalPoints) },
			Compare: func(a, b todo.User) int { return cmp.Compare(a.TotalPoints, b.TotalPoints) },
		},
		{
			Key:     ColTaskCount,
			Title:   "Task Count",
			Align:   lipgloss.Center,
			Width:   10,
			Value:   func(u todo.User) string { return strconv.Itoa(u.TaskCount()) },
			Compare: func(a, b todo.User) int { return cmp.Compare(a.TaskCount(), b.TaskCount()) },
		},
		{
			Key:   ColActions,
			Title: "Actions",
			Width: 8,
			Value: func(todo.User) string { return ActionDelete.Label() },
		},
	}
}

// TaskColumns is the column set of the tasks table. The "User" and
// "Actions" cells depend on the fetched users in ix.
func TaskColumns(ix UserIndex) []table.Column[todo.Task] {
	return []table.Column[todo.Task]{
		{
			Key:     ColTaskName,
			Title:   "Task Name",
			Width:   10,
			Flex:    true,
			Value:   func(t todo.Task) string { return t.Name },
			Compare: func(a, b todo.Task) int { return compareFold(a.Name, b.Name) },
		},
		{
			Key:     ColPoints,
			Title:   "Points",
			Align:   lipgloss.Right,
			Width:   6,
			Value:   func(t todo.Task) string { return strconv.Itoa(t.Points) },
			Compare: func(a, b todo.Task) int { return cmp.Compare(a.Points, b.Points) },
		},
		{
			Key:     ColUserID,
			Title:   "User ID",
			Width:   7,
			Value:   func(t todo.Task) string { return t.Assignee.String() },
			Compare: func(a, b todo.Task) int { return cmp.Compare(a.Assignee.WireValue(), b.Assignee.WireValue()) },
		},
		{
			Key:     ColUser,
			Title:   "User",
			Width:   12,
			Flex:    true,
			Value:   func(t todo.Task) string { return AssigneeName(t, ix) },
			Compare: func(a, b todo.Task) int { return compareFold(AssigneeName(a, ix), AssigneeName(b, ix)) },
		},
		{
			Key:   ColActions,
			Title: "Actions",
			Width: 8,
			Value: func(t todo.Task) string { return ActionFor(t, ix).Label() },
		},
	}
}
