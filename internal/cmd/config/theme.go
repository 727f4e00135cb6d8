package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the todo terminal UI.

tui.theme takes a built-in theme name or the path of a YAML theme file.
Use 'theme export' to write a built-in theme as a starting point for your own.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a built-in theme to YAML for customization.

If no output file is specified, the YAML is printed to stdout.

Examples:
  todo config theme export default              # Print default theme to stdout
  todo config theme export nord my-theme.yaml   # Save nord theme to file
  todo config set tui.theme ./my-theme.yaml     # Use the edited copy`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme>",
	Short: "Show the colors of a theme name or theme file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeInfoCmd)
	configCmd.AddCommand(themeCmd)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintln(out, "\nAny YAML theme file can be used by setting tui.theme to its path.")
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if !styles.IsBuiltinTheme(themeName) {
		return fmt.Errorf("unknown theme: %s\n\nRun 'todo config theme list' to see available themes", themeName)
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	theme := args[0]
	palette, err := styles.ResolvePalette(theme)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Theme: %s\n\n", theme)
	if styles.IsBuiltinTheme(theme) {
		fmt.Fprintln(out, "Type: Built-in")
	} else {
		fmt.Fprintln(out, "Type: File")
	}

	fmt.Fprintln(out, "\nColors:")
	fmt.Fprintf(out, "  Primary:   %s\n", palette.Primary)
	fmt.Fprintf(out, "  Secondary: %s\n", palette.Secondary)
	fmt.Fprintf(out, "  Warning:   %s\n", palette.Warning)
	fmt.Fprintf(out, "  Error:     %s\n", palette.Error)
	fmt.Fprintf(out, "  Muted:     %s\n", palette.Muted)
	fmt.Fprintf(out, "  Surface:   %s\n", palette.Surface)
	fmt.Fprintf(out, "  Text:      %s\n", palette.Text)
	fmt.Fprintf(out, "  Border:    %s\n", palette.Border)
	fmt.Fprintf(out, "  Accent:    %s\n", palette.Accent)
	return nil
}
