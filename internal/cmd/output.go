package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MissQuinn-dev/todo-frontend/internal/board"
	"github.com/MissQuinn-dev/todo-frontend/internal/table"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var outputFormats = []string{outputTable, outputJSON}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", outputTable,
		"Output format ("+strings.Join(outputFormats, ", ")+")")
}

func checkOutput(format string) error {
	if !slices.Contains(outputFormats, format) {
		return fmt.Errorf("unsupported output format: %s (supported: %s)", format, strings.Join(outputFormats, ", "))
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// writeTable prints rows with the same columns the UI shows, minus the
// action buttons. cell may rewrite a cell's text.
func writeTable[T any](w io.Writer, cols []table.Column[T], rows []T, empty string, cell func(key string, row T, text string) string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}

	cols = slices.DeleteFunc(slices.Clone(cols), func(c table.Column[T]) bool { return c.Key == board.ColActions })

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Title
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle
			}
			if col < len(cols) {
				return cellStyle.Align(cols[col].Align)
			}
			return cellStyle
		})

	for _, r := range rows {
		values := make([]string, len(cols))
		for i, c := range cols {
			values[i] = c.Value(r)
			if cell != nil {
				values[i] = cell(c.Key, r, values[i])
			}
		}
		t.Row(values...)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
