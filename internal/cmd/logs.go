package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/MissQuinn-dev/todo-frontend/internal/config"
	"github.com/MissQuinn-dev/todo-frontend/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the todo log",
	Long: `View and filter the log written by the terminal UI and the CLI.

Examples:
  # Show the last 50 entries
  todo logs

  # Show everything
  todo logs -n 0

  # Only warnings and errors from the API client
  todo logs --level warn --component api

  # Follow one request
  todo logs --request-id 0b6d3c1e-...

  # Entries from the last hour matching a pattern, as CSV
  todo logs --since 1h --grep "task|user" --format csv`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail      int
	logsLevel     string
	logsSince     string
	logsGrep      string
	logsComponent string
	logsRequestID string
	logsFormat    string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter entries matching pattern (regex)")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Filter by component (api, tui, cmd)")
	logsCmd.Flags().StringVar(&logsRequestID, "request-id", "", "Filter by X-Request-Id")
	logsCmd.Flags().StringVar(&logsFormat, "format", "text", "Output format (text, json, csv)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	logPath := filepath.Join(config.StateDir(), logging.LogFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "No log file yet. Logs are stored at: %s\n", logPath)
		return nil
	}

	filter, err := logsFilter(time.Now())
	if err != nil {
		return err
	}

	entries, err := logging.ReadLogs(logPath)
	if err != nil {
		return err
	}
	entries = logging.Tail(logging.FilterLogs(entries, filter), logsTail)

	return logging.WriteEntries(cmd.OutOrStdout(), entries, logsFormat)
}

// logsFilter builds the filter from the command flags.
func logsFilter(now time.Time) (logging.LogFilter, error) {
	filter := logging.LogFilter{
		Component: logsComponent,
		RequestID: logsRequestID,
	}

	if logsLevel != "" {
		filter.Level = logging.ParseLevel(logsLevel)
	}

	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return filter, fmt.Errorf("invalid duration format: %w", err)
		}
		filter.Since = now.Add(-d)
	}

	if logsGrep != "" {
		re, err := regexp.Compile(logsGrep)
		if err != nil {
			return filter, fmt.Errorf("invalid grep pattern: %w", err)
		}
		filter.Pattern = re
	}

	return filter, nil
}
