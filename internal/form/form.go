// Package form validates the create-user and create-task inputs before any
// request is made.
package form

import (
	"strconv"
	"strings"

	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
)

// Field names used in validation errors.
const (
	FieldUserName = "name"
	FieldTaskName = "taskName"
	FieldPoints   = "points"
)

// Messages shown under an invalid field.
const (
	MsgNoName         = "No Name Entered."
	MsgNoTaskName     = "No Task Name Entered."
	MsgPointsNotInt   = "Points must be a number."
	MsgPointsTooSmall = "Points must be at least 1."
)

// MinPoints is the smallest accepted point value.
const MinPoints = 1

// Errors maps a field name to its validation error.
type Errors map[string]*errors.ValidationError

// Message returns the message for field, or "" when the field is valid.
func (e Errors) Message(field string) string {
	if err, ok := e[field]; ok && err != nil {
		return err.Message()
	}
	return ""
}

// Err folds the field errors into one error, nil when there are none.
// Fields are joined in a fixed order so the result is stable.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	var errs []error
	for _, field := range []string{FieldUserName, FieldTaskName, FieldPoints} {
		if err, ok := e[field]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// User is the validated create-user payload.
type User struct {
	Name string
}

// Task is the validated create-task payload.
type Task struct {
	Name   string
	Points int
}

// ValidateUser trims the name and checks that it is not empty.
func ValidateUser(name string) (User, Errors) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, Errors{FieldUserName: errors.NewValidationError(MsgNoName).WithField(FieldUserName)}
	}
	return User{Name: name}, nil
}

// ValidateTask trims the name, parses points as a base-10 integer and
// checks both. Every invalid field is reported.
func ValidateTask(name, points string) (Task, Errors) {
	errs := Errors{}

	name = strings.TrimSpace(name)
	if name == "" {
		errs[FieldTaskName] = errors.NewValidationError(MsgNoTaskName).WithField(FieldTaskName)
	}

	n, err := ParsePoints(points)
	if err != nil {
		errs[FieldPoints] = err
	}

	if len(errs) > 0 {
		return Task{}, errs
	}
	return Task{Name: name, Points: n}, nil
}

// ParsePoints parses a point value and checks it against MinPoints.
func ParsePoints(raw string) (int, *errors.ValidationError) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(MsgPointsNotInt).WithField(FieldPoints).WithValue(raw).WithCause(err)
	}
	if n < MinPoints {
		return 0, errors.NewValidationError(MsgPointsTooSmall).WithField(FieldPoints).WithValue(n)
	}
	return n, nil
}
