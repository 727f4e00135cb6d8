package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.page_size")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Bounds on tui settings.
const (
	MinPageSize = 1
	MaxPageSize = 100
	MaxToasts   = 10
)

// ValidLogLevels returns the valid logging.level values
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the built-in theme names
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// IsThemeFile reports whether theme names a YAML theme file rather than a
// built-in theme.
func IsThemeFile(theme string) bool {
	ext := strings.ToLower(filepath.Ext(theme))
	return ext == ".yaml" || ext == ".yml"
}

// Validate checks all configuration values and returns every problem found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.API.BaseURL)
	switch {
	case c.API.BaseURL == "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must not be empty",
		})
	case err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be an absolute http or https URL",
		})
	}

	if c.API.Timeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout",
			Value:   c.API.Timeout,
			Message: "must be non-negative (0 disables the timeout)",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) && !IsThemeFile(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s, or a .yaml theme file", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.PageSize < MinPageSize || c.TUI.PageSize > MaxPageSize {
		errors = append(errors, ValidationError{
			Field:   "tui.page_size",
			Value:   c.TUI.PageSize,
			Message: fmt.Sprintf("must be between %d and %d", MinPageSize, MaxPageSize),
		})
	}

	if c.TUI.ToastDuration <= 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.toast_duration",
			Value:   c.TUI.ToastDuration,
			Message: "must be positive",
		})
	}

	if c.TUI.MaxToasts < 1 || c.TUI.MaxToasts > MaxToasts {
		errors = append(errors, ValidationError{
			Field:   "tui.max_toasts",
			Value:   c.TUI.MaxToasts,
			Message: fmt.Sprintf("must be between 1 and %d", MaxToasts),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	} else if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
