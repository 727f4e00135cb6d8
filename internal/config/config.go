package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete todo front-end configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the backend is reached
type APIConfig struct {
	// BaseURL is the origin every request is sent to (default: http://localhost:3000)
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each request. 0 disables the timeout (default: 10s)
	Timeout time.Duration `mapstructure:"timeout"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is a built-in theme name or a path to a YAML theme file
	Theme string `mapstructure:"theme"`
	// PageSize is the number of rows per table page (default: 10)
	PageSize int `mapstructure:"page_size"`
	// ToastDuration is how long a notification stays on screen (default: 4s)
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	// MaxToasts caps the number of stacked notifications (default: 3)
	MaxToasts int `mapstructure:"max_toasts"`
	// KeyBindings adds normal-mode bindings, mapping a command name such as
	// "refresh" to a key spec such as "ctrl+r"
	KeyBindings map[string]string `mapstructure:"keys"`
}

// LoggingConfig controls file logging
type LoggingConfig struct {
	// Enabled controls whether logs are written (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the log size in megabytes that triggers rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 10 * time.Second,
		},
		TUI: TUIConfig{
			Theme:         "default",
			PageSize:      10,
			ToastDuration: 4 * time.Second,
			MaxToasts:     3,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout", defaults.API.Timeout)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.page_size", defaults.TUI.PageSize)
	viper.SetDefault("tui.toast_duration", defaults.TUI.ToastDuration)
	viper.SetDefault("tui.max_toasts", defaults.TUI.MaxToasts)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Keys returns every configuration key in the order "config show" prints them.
func Keys() []string {
	return []string{
		"api.base_url",
		"api.timeout",
		"tui.theme",
		"tui.page_size",
		"tui.toast_duration",
		"tui.max_toasts",
		"logging.enabled",
		"logging.level",
		"logging.max_size_mb",
		"logging.max_backups",
	}
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded values do not validate.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todo"
	}
	return filepath.Join(home, ".config", "todo")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todo"
	}
	return filepath.Join(home, ".local", "state", "todo")
}
