// Package config provides CLI commands for managing the todo configuration.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/MissQuinn-dev/todo-frontend/internal/config"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify the todo configuration",
	Long: `View or modify the todo configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  todo config set api.base_url http://localhost:8080
  todo config set tui.theme nord
  todo config set tui.toast_duration 6s

Valid keys:
  api.base_url         - Backend origin (http or https URL)
  api.timeout          - Per-request timeout, 0 disables it (e.g. 10s)
  tui.theme            - default, monokai, dracula, nord, or a path to a YAML theme
  tui.page_size        - Rows per table page (1-100)
  tui.toast_duration   - How long notifications stay on screen (e.g. 4s)
  tui.max_toasts       - Maximum stacked notifications
  logging.enabled      - Write the log file (true/false)
  logging.level        - debug, info, warn or error
  logging.max_size_mb  - Log size that triggers rotation
  logging.max_backups  - Rotated log files to keep`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at $XDG_CONFIG_HOME/todo/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config file in your editor",
	Long: `Open the config file in your preferred editor.

Uses $EDITOR environment variable, or falls back to common editors (vim, nano, vi).
If no config file exists, creates one with default values first.
A running terminal UI picks up theme changes when the file is saved.`,
	RunE: runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  todo config reset            # Reset all to defaults
  todo config reset tui.theme  # Reset only tui.theme to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyKind is how a value given to "config set" is parsed.
type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindBool
	kindDuration
)

var keyKinds = map[string]keyKind{
	"api.base_url":        kindString,
	"api.timeout":         kindDuration,
	"tui.theme":           kindString,
	"tui.page_size":       kindInt,
	"tui.toast_duration":  kindDuration,
	"tui.max_toasts":      kindInt,
	"logging.enabled":     kindBool,
	"logging.level":       kindString,
	"logging.max_size_mb": kindInt,
	"logging.max_backups": kindInt,
}

// settings flattens cfg into the keys "config show" and "config reset" use.
func settings(cfg *appconfig.Config) map[string]any {
	return map[string]any{
		"api.base_url":        cfg.API.BaseURL,
		"api.timeout":         cfg.API.Timeout,
		"tui.theme":           cfg.TUI.Theme,
		"tui.page_size":       cfg.TUI.PageSize,
		"tui.toast_duration":  cfg.TUI.ToastDuration,
		"tui.max_toasts":      cfg.TUI.MaxToasts,
		"logging.enabled":     cfg.Logging.Enabled,
		"logging.level":       cfg.Logging.Level,
		"logging.max_size_mb": cfg.Logging.MaxSizeMB,
		"logging.max_backups": cfg.Logging.MaxBackups,
	}
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown configuration key: %s\nRun 'todo config set --help' to see valid keys", key)
}

// parseValue converts a command line value to the type stored under key.
func parseValue(key, value string) (any, error) {
	kind, ok := keyKinds[key]
	if !ok {
		return nil, unknownKey(key)
	}

	switch kind {
	case kindBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return n, nil
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected a duration such as 4s", key)
		}
		// Stored as text so the file stays readable.
		return d.String(), nil
	}
	return value, nil
}

// configFile is where changes are written: the file in use, or the default
// location when none was found.
func configFile() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return appconfig.ConfigFile()
}

func writeConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := appconfig.Load()
	if err != nil {
		fmt.Fprintf(out, "Configuration is invalid, showing defaults:\n%v\n\n", err)
		cfg = appconfig.Default()
	}

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "Config file: (none - using defaults)")
	}
	fmt.Fprintln(out)

	values := settings(cfg)
	section := ""
	for _, key := range appconfig.Keys() {
		group, name, _ := strings.Cut(key, ".")
		if group != section {
			fmt.Fprintf(out, "%s:\n", group)
			section = group
		}
		fmt.Fprintf(out, "  %s: %v\n", name, values[key])
	}

	if len(cfg.TUI.KeyBindings) > 0 {
		fmt.Fprintln(out, "tui.keys:")
		names := make([]string, 0, len(cfg.TUI.KeyBindings))
		for name := range cfg.TUI.KeyBindings {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s: %s\n", name, cfg.TUI.KeyBindings[name])
		}
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typed, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	// Validate the whole configuration with the new value before writing.
	previous := viper.Get(key)
	viper.Set(key, typed)
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	path := configFile()
	if err := writeConfig(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typed)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", path)
	return nil
}

// defaultConfigContent is written by "config init".
const defaultConfigContent = `# todo configuration

# Backend settings
api:
  # Origin of the ToDo REST API
  base_url: http://localhost:3000
  # Per-request timeout; 0 disables it
  timeout: 10s

# Terminal UI settings
tui:
  # default, monokai, dracula, nord, or a path to a YAML theme file.
  # A running UI picks up changes to this value.
  theme: default
  # Rows per table page
  page_size: 10
  # How long notifications stay on screen
  toast_duration: 4s
  # Maximum stacked notifications
  max_toasts: 3
  # Extra key bindings, command name to key, e.g.
  # keys:
  #   refresh: ctrl+r

# Log file settings (the log lives in $XDG_STATE_HOME/todo/todo.log)
logging:
  enabled: true
  # debug, info, warn or error
  level: info
  # Size in megabytes that triggers rotation
  max_size_mb: 5
  # Rotated files to keep
  max_backups: 3
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'todo config set' to modify values", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", appconfig.ConfigFile())
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")
	fmt.Fprintln(out, "\nEnvironment variables: TODO_* (e.g., TODO_API_BASE_URL)")
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	path := configFile()

	// Check if config file exists, if not create it
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
		path = appconfig.ConfigFile()
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", path)
	return nil
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, e := range []string{"vim", "nano", "vi"} {
		if _, err := execLookPath(e); err == nil {
			return e
		}
	}
	return ""
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := settings(appconfig.Default())
	for key, value := range defaults {
		if d, ok := value.(time.Duration); ok {
			defaults[key] = d.String()
		}
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for key, value := range defaults {
			viper.Set(key, value)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := defaults[key]
		if !ok {
			return unknownKey(key)
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	path := configFile()
	if err := writeConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", path)
	return nil
}
