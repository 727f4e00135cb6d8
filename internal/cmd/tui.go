package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MissQuinn-dev/todo-frontend/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal UI",
	Long: `Open the terminal UI. This is also what running todo without a
subcommand does.

The UI re-reads tui.theme whenever the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := setup("tui")
	if err != nil {
		return err
	}
	defer e.Close()

	app := tui.New(e.svc, tui.OptionsFromConfig(e.cfg, e.logger), configPath())
	if err := app.Run(cmd.Context()); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
