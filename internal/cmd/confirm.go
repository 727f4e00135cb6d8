package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
)

// stdinIsTerminal reports whether a prompt can be answered. Tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirm asks prompt on the terminal unless yes was given up front.
// Without a terminal the action is refused rather than assumed.
func confirm(cmd *cobra.Command, prompt string, yes bool) error {
	if yes {
		return nil
	}
	if !stdinIsTerminal() {
		return fmt.Errorf("%w: stdin is not a terminal, pass --yes to confirm", errors.ErrUnconfirmed)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	}
	return errors.ErrUnconfirmed
}
