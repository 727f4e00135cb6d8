package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "tui.page_size", Value: 0, Message: "must be between 1 and 100"}
	want := "tui.page_size: must be between 1 and 100 (got: 0)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	tests := []struct {
		name     string
		errs     ValidationErrors
		contains []string
	}{
		{"empty", ValidationErrors{}, nil},
		{"single", ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}, []string{"a: bad (got: 1)"}},
		{
			"multiple",
			ValidationErrors{{Field: "a", Value: 1, Message: "bad"}, {Field: "b", Value: 2, Message: "worse"}},
			[]string{"2 validation errors", "1. a: bad", "2. b: worse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.errs.Error()
			if len(tt.contains) == 0 && got != "" {
				t.Errorf("Error() = %q, want empty", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Error() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("Default().Validate() = %v, want no errors", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, "api.base_url"},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }, "api.base_url"},
		{"ftp base url", func(c *Config) { c.API.BaseURL = "ftp://example.com" }, "api.base_url"},
		{"https base url", func(c *Config) { c.API.BaseURL = "https://example.com:8443" }, ""},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, "api.timeout"},
		{"disabled timeout", func(c *Config) { c.API.Timeout = 0 }, ""},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "solarized" }, "tui.theme"},
		{"builtin theme", func(c *Config) { c.TUI.Theme = "nord" }, ""},
		{"theme file", func(c *Config) { c.TUI.Theme = "/home/me/theme.yml" }, ""},
		{"page size zero", func(c *Config) { c.TUI.PageSize = 0 }, "tui.page_size"},
		{"page size too big", func(c *Config) { c.TUI.PageSize = 101 }, "tui.page_size"},
		{"page size max", func(c *Config) { c.TUI.PageSize = 100 }, ""},
		{"toast duration zero", func(c *Config) { c.TUI.ToastDuration = 0 }, "tui.toast_duration"},
		{"max toasts zero", func(c *Config) { c.TUI.MaxToasts = 0 }, "tui.max_toasts"},
		{"max toasts too many", func(c *Config) { c.TUI.MaxToasts = 11 }, "tui.max_toasts"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"uppercase log level", func(c *Config) { c.Logging.Level = "DEBUG" }, ""},
		{"log size zero", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"log size huge", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = ""
	cfg.TUI.PageSize = -1
	cfg.Logging.MaxBackups = -1

	if errs := cfg.Validate(); len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
}

func TestIsThemeFile(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"nord", false},
		{"theme.yaml", true},
		{"/abs/Theme.YML", true},
		{"theme.json", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsThemeFile(tt.in); got != tt.want {
			t.Errorf("IsThemeFile(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
