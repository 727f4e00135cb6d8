// Package todo defines the user and task records exchanged with the backend
// and the checks applied to them before they reach the UI.
package todo

import (
	"bytes"
	"strconv"
	"time"

	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
)

// UserRef is the optional relation from a task to the user it is assigned
// to. The zero value is unassigned. On the wire it is the "user_id" field,
// where 0 and null both mean unassigned.
type UserRef struct {
	id int
}

// Unassigned returns the empty relation.
func Unassigned() UserRef { return UserRef{} }

// AssignedTo returns a relation to the user with the given ID. IDs <= 0
// produce an unassigned ref.
func AssignedTo(userID int) UserRef {
	if userID <= 0 {
		return UserRef{}
	}
	return UserRef{id: userID}
}

// ID returns the referenced user ID and whether the task is assigned.
func (r UserRef) ID() (int, bool) {
	return r.id, r.id > 0
}

// IsAssigned reports whether the ref points at a user.
func (r UserRef) IsAssigned() bool { return r.id > 0 }

// WireValue is the integer sent as "user_id": the user ID or 0.
func (r UserRef) WireValue() int { return r.id }

// String renders the ref for the "User ID" column.
func (r UserRef) String() string {
	return strconv.Itoa(r.id)
}

// MarshalJSON encodes an unassigned ref as 0.
func (r UserRef) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(r.id)), nil
}

// UnmarshalJSON accepts a non-negative integer or null.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = UserRef{}
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return errors.NewValidationError("user_id must be an integer").
			WithField("user_id").WithValue(string(data)).WithCause(err)
	}
	if n < 0 {
		return errors.NewValidationError("user_id must not be negative").
			WithField("user_id").WithValue(n)
	}
	*r = UserRef{id: n}
	return nil
}

// Task is a unit of work worth some points, optionally assigned to a user.
type Task struct {
	ID        int        `json:"ID"`
	CreatedAt time.Time  `json:"CreatedAt"`
	UpdatedAt time.Time  `json:"UpdatedAt"`
	DeletedAt *time.Time `json:"DeletedAt"`
	Name      string     `json:"name"`
	Points    int        `json:"points"`
	Assignee  UserRef    `json:"user_id"`
}

// IsDeleted reports whether the backend soft-deleted the task.
func (t Task) IsDeleted() bool { return t.DeletedAt != nil }

// Validate checks the fields the UI relies on.
func (t Task) Validate() error {
	if t.ID <= 0 {
		return errors.NewValidationError("task ID must be positive").WithField("ID").WithValue(t.ID)
	}
	return nil
}

// User is a person tasks can be assigned to. TotalPoints is computed by the
// backend.
type User struct {
	ID          int        `json:"ID"`
	CreatedAt   time.Time  `json:"CreatedAt"`
	UpdatedAt   time.Time  `json:"UpdatedAt"`
	DeletedAt   *time.Time `json:"DeletedAt"`
	Name        string     `json:"name"`
	TotalPoints int        `json:"totalPoints"`
	Tasks       []Task     `json:"tasks"`
}

// IsDeleted reports whether the backend soft-deleted the user.
func (u User) IsDeleted() bool { return u.DeletedAt != nil }

// TaskCount is the number of tasks listed on the user, 0 when absent.
func (u User) TaskCount() int { return len(u.Tasks) }

// Validate checks the fields the UI relies on.
func (u User) Validate() error {
	if u.ID <= 0 {
		return errors.NewValidationError("user ID must be positive").WithField("ID").WithValue(u.ID)
	}
	return nil
}

// CleanTasks drops soft-deleted tasks and validates the rest. The returned
// slice is never nil.
func CleanTasks(in []Task) ([]Task, error) {
	out := make([]Task, 0, len(in))
	for i, t := range in {
		if t.IsDeleted() {
			continue
		}
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "task at index %d", i)
		}
		out = append(out, t)
	}
	return out, nil
}

// CleanUsers drops soft-deleted users and users without a usable ID, and
// cleans each user's nested task list. Dropped records are returned in
// skipped so the caller can report them. The returned slice is never nil.
func CleanUsers(in []User) (users []User, skipped []User, err error) {
	users = make([]User, 0, len(in))
	for _, u := range in {
		if u.IsDeleted() {
			continue
		}
		if u.Validate() != nil {
			skipped = append(skipped, u)
			continue
		}
		tasks, err := CleanTasks(u.Tasks)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "user %d", u.ID)
		}
		u.Tasks = tasks
		users = append(users, u)
	}
	return users, skipped, nil
}
