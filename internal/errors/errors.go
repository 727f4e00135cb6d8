// Package errors provides centralized error definitions and error handling utilities
// for the todo front-end. It defines sentinel errors, semantic error types for the
// two failure families the UI distinguishes (form validation and backend calls),
// and classification helpers used to decide what is shown to the user.
//
// # Error Types
//
//   - APIError: a request to the backend failed (transport error or non-2xx status)
//   - ValidationError: form input was rejected before any network call
//   - NotFoundError: a referenced user or task does not exist locally
//
// # Usage
//
//	err := errors.NewAPIError(http.MethodPost, "/api/v1/task", cause).WithStatus(500)
//
//	if errors.Is(err, errors.ErrRequestFailed) { ... }
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == 404 { ... }
//
// Nothing in this package retries. A failed request is reported once and the user
// re-triggers the action manually.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors caused by user input or a recoverable condition.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidInput indicates that form or argument validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrRequestFailed indicates that a backend request did not succeed.
	ErrRequestFailed = New("request failed")
	// ErrInvalidResponse indicates that a backend response could not be decoded
	// or failed boundary validation.
	ErrInvalidResponse = New("invalid response")
	// ErrNotFound indicates that the backend answered 404 or a local lookup failed.
	ErrNotFound = New("not found")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrUnconfirmed indicates that a destructive action was not confirmed.
	ErrUnconfirmed = New("action not confirmed")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// classified is implemented by every error type in this package.
type classified interface {
	error
	Severity() Severity
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// API Errors
// -----------------------------------------------------------------------------

// APIError represents a failed call to the backend REST API.
//
// StatusCode is 0 when the request never produced a response (connection
// refused, timeout, canceled context).
//
// Example:
//
//	err := errors.NewAPIError("DELETE", "/api/v1/task/5", nil).WithStatus(500)
//	fmt.Println(err) // "api error [DELETE /api/v1/task/5, status=500]: request failed"
type APIError struct {
	baseError
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// NewAPIError creates a new APIError. The cause may be nil for non-2xx responses.
func NewAPIError(method, path string, cause error) *APIError {
	return &APIError{
		baseError: baseError{
			message:    "request failed",
			cause:      cause,
			severity:   SeverityError,
			userFacing: false,
		},
		Method: method,
		Path:   path,
	}
}

// WithStatus records the HTTP status code returned by the backend.
func (e *APIError) WithStatus(code int) *APIError {
	e.StatusCode = code
	return e
}

// WithBody records a (truncated) response body for diagnostics.
func (e *APIError) WithBody(body string) *APIError {
	const maxBody = 200
	body = strings.TrimSpace(body)
	if len(body) > maxBody {
		body = body[:maxBody] + "..."
	}
	e.Body = body
	return e
}

// WithMessage overrides the default message.
func (e *APIError) WithMessage(msg string) *APIError {
	e.message = msg
	return e
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	parts := []string{fmt.Sprintf("%s %s", e.Method, e.Path)}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	prefix := fmt.Sprintf("api error [%s]", strings.Join(parts, ", "))

	msg := fmt.Sprintf("%s: %s", prefix, e.message)
	if e.Body != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Body)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is checks if this error matches the target.
func (e *APIError) Is(target error) bool {
	if _, ok := target.(*APIError); ok {
		return true
	}
	if target == ErrRequestFailed {
		return true
	}
	if target == ErrNotFound && e.StatusCode == 404 {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("user", "7")
//	fmt.Println(err) // "user '7' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if target == ErrNotFound {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid user input. Message is the text shown next
// to the offending field.
//
// Example:
//
//	err := errors.NewValidationError("Points must be at least 1.").WithField("points").WithValue("0")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Message returns the bare human-readable message without field context.
func (e *ValidationError) Message() string {
	return e.message
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users
// verbatim. API errors are not: the UI shows a fixed per-action message instead
// and the details go to the log.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var c classified
	if As(err, &c) {
		return c.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't come from this package.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var c classified
	if As(err, &c) {
		return c.Severity()
	}
	return SeverityError
}

// StatusCode returns the HTTP status carried by an APIError anywhere in the
// chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "decoding task list")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
