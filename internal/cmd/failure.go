package cmd

import (
	"fmt"

	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
)

// actionError is a backend failure with the fixed text shown for the action
// that caused it.
type actionError struct {
	summary string
	cause   error
}

func failed(summary string, cause error) error {
	return &actionError{summary: summary, cause: cause}
}

func (e *actionError) Error() string { return fmt.Sprintf("%s: %v", e.summary, e.cause) }

func (e *actionError) Unwrap() error { return e.cause }

// Message is the text printed for an error returned by Execute. Input and
// lookup errors are shown verbatim. Backend failures are reduced to the
// action summary; the details are in the log.
func Message(err error) string {
	var action *actionError
	if errors.As(err, &action) && !errors.IsUserFacing(action.cause) {
		return action.summary + ". Run 'todo logs --level warn' for details."
	}
	return err.Error()
}
