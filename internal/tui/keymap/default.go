package keymap

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultKeymap returns the default key bindings of the todo TUI.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default todo TUI key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:  defaultNormalBindings(),
			ModeForm:    defaultFormBindings(),
			ModeFilter:  defaultFilterBindings(),
			ModeConfirm: defaultConfirmBindings(),
			ModeAssign:  defaultAssignBindings(),
			ModeHelp:    defaultHelpBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Focus
			{KeyType: tea.KeyTab, Command: CmdNextPane, Description: "Next pane", Category: "Focus"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevPane, Description: "Previous pane", Category: "Focus"},
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdFocusPane, Description: "Create user form", Category: "Focus"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdFocusPane, Description: "Create task form", Category: "Focus"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdFocusPane, Description: "Users table", Category: "Focus"},
			{KeyType: tea.KeyRunes, Rune: '4', Command: CmdFocusPane, Description: "Tasks table", Category: "Focus"},

			// Rows and pages
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdCursorDown, Description: "Next row", Category: "Rows"},
			{KeyType: tea.KeyDown, Command: CmdCursorDown, Description: "Next row", Category: "Rows"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdCursorUp, Description: "Previous row", Category: "Rows"},
			{KeyType: tea.KeyUp, Command: CmdCursorUp, Description: "Previous row", Category: "Rows"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNextPage, Description: "Next page", Category: "Rows"},
			{KeyType: tea.KeyRight, Command: CmdNextPage, Description: "Next page", Category: "Rows"},
			{KeyType: tea.KeyPgDown, Command: CmdNextPage, Description: "Next page", Category: "Rows"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrevPage, Description: "Previous page", Category: "Rows"},
			{KeyType: tea.KeyLeft, Command: CmdPrevPage, Description: "Previous page", Category: "Rows"},
			{KeyType: tea.KeyPgUp, Command: CmdPrevPage, Description: "Previous page", Category: "Rows"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdFirstPage, Description: "First page", Category: "Rows"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdLastPage, Description: "Last page", Category: "Rows"},

			// Sorting and filtering
			{KeyType: tea.KeyRunes, Rune: '>', Command: CmdNextSortColumn, Description: "Select next column", Category: "Sort & Filter"},
			{KeyType: tea.KeyRunes, Rune: '<', Command: CmdPrevSortColumn, Description: "Select previous column", Category: "Sort & Filter"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdCycleSort, Description: "Cycle sort on column", Category: "Sort & Filter"},
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterFilter, Description: "Filter by name", Category: "Sort & Filter"},
			{KeyType: tea.KeyEsc, Command: CmdClearFilter, Description: "Clear filter", Category: "Sort & Filter"},

			// Row actions
			{KeyType: tea.KeyEnter, Command: CmdActivate, Description: "Assign or delete row", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdAssign, Description: "Assign task to user", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDelete, Description: "Delete or complete row", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdDelete, Description: "Delete or complete row", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdRefresh, Description: "Reload tables", Category: "Actions"},

			// Application
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

// Form panes take runes as text, so only non-printing keys are bound.
func defaultFormBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeForm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyTab, Command: CmdNextPane, Description: "Next pane", Category: "Focus"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevPane, Description: "Previous pane", Category: "Focus"},
			{KeyType: tea.KeyDown, Command: CmdNextField, Description: "Next field", Category: "Form"},
			{KeyType: tea.KeyUp, Command: CmdPrevField, Description: "Previous field", Category: "Form"},
			{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: "Confirm", Category: "Form"},
			{KeyType: tea.KeyEsc, Command: CmdResetForm, Description: "Clear form", Category: "Form"},
			{KeyType: tea.KeyF1, Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultFilterBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeFilter,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdApplyFilter, Description: "Keep filter", Category: "Filter"},
			{KeyType: tea.KeyEsc, Command: CmdCancelFilter, Description: "Clear filter", Category: "Filter"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultConfirmBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdConfirm, Description: "Yes", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'Y', Command: CmdConfirm, Description: "Yes", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'n', Command: CmdCancel, Description: "No", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'N', Command: CmdCancel, Description: "No", Category: "Confirm"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "No", Category: "Confirm"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultAssignBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeAssign,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdMenuDown, Description: "Next user", Category: "Menu"},
			{KeyType: tea.KeyDown, Command: CmdMenuDown, Description: "Next user", Category: "Menu"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdMenuUp, Description: "Previous user", Category: "Menu"},
			{KeyType: tea.KeyUp, Command: CmdMenuUp, Description: "Previous user", Category: "Menu"},
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Assign to user", Category: "Menu"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Close menu", Category: "Menu"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdCancel, Description: "Close menu", Category: "Menu"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultHelpBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeHelp,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyEsc, Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyF1, Command: CmdToggleHelp, Description: "Close help", Category: "Help"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

// rebindable lists the normal mode commands that configuration may bind.
var rebindable = []Command{
	CmdNextPane, CmdPrevPane,
	CmdCursorDown, CmdCursorUp,
	CmdNextPage, CmdPrevPage, CmdFirstPage, CmdLastPage,
	CmdNextSortColumn, CmdPrevSortColumn, CmdCycleSort,
	CmdEnterFilter, CmdClearFilter,
	CmdActivate, CmdAssign, CmdDelete, CmdRefresh,
	CmdToggleHelp, CmdQuit,
}

// LookupCommand resolves a configured command name.
func LookupCommand(name string) (Command, bool) {
	cmd := Command(name)
	if slices.Contains(rebindable, cmd) {
		return cmd, true
	}
	return "", false
}

// ApplyBindings adds the configured extra bindings (command name to key
// spec) to normal mode. Bad entries are skipped and reported; the rest are
// applied.
func (km *Keymap) ApplyBindings(bindings map[string]string) []error {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []error
	for _, name := range names {
		cmd, ok := LookupCommand(name)
		if !ok {
			errs = append(errs, fmt.Errorf("keys.%s: unknown command", name))
			continue
		}

		desc := string(cmd)
		category := "Custom"
		if existing := km.GetBindingsForCommand(cmd, ModeNormal); len(existing) > 0 {
			desc, category = existing[0].Description, existing[0].Category
		}
		if err := km.Bind(ModeNormal, bindings[name], cmd, desc, category); err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", name, err))
		}
	}
	return errs
}
