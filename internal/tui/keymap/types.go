// Package keymap provides the key binding definitions and lookup for the
// TUI. Bindings are declared per input mode so that Update can translate a
// key press into a named command before acting on it.
package keymap

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal  Mode = "normal"  // A table pane has focus
	ModeForm    Mode = "form"    // A form pane has focus; runes go to its input
	ModeFilter  Mode = "filter"  // Typing in the task filter box (after /)
	ModeConfirm Mode = "confirm" // Yes/no prompt before a delete
	ModeAssign  Mode = "assign"  // "Select User" menu is open
	ModeHelp    Mode = "help"    // Help overlay is open
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	// Focus
	CmdNextPane  Command = "next_pane"
	CmdPrevPane  Command = "prev_pane"
	CmdFocusPane Command = "focus_pane" // 1-4 keys

	// Rows and pages
	CmdCursorDown Command = "cursor_down"
	CmdCursorUp   Command = "cursor_up"
	CmdNextPage   Command = "next_page"
	CmdPrevPage   Command = "prev_page"
	CmdFirstPage  Command = "first_page"
	CmdLastPage   Command = "last_page"

	// Sorting and filtering
	CmdNextSortColumn Command = "next_sort_column"
	CmdPrevSortColumn Command = "prev_sort_column"
	CmdCycleSort      Command = "cycle_sort"
	CmdEnterFilter    Command = "enter_filter"
	CmdClearFilter    Command = "clear_filter"

	// Row actions
	CmdActivate Command = "activate"
	CmdAssign   Command = "assign"
	CmdDelete   Command = "delete"
	CmdRefresh  Command = "refresh"

	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Form mode commands
const (
	CmdNextField Command = "next_field"
	CmdPrevField Command = "prev_field"
	CmdSubmit    Command = "submit"
	CmdResetForm Command = "reset_form"
)

// Filter, confirm and menu commands
const (
	CmdApplyFilter  Command = "apply_filter"
	CmdCancelFilter Command = "cancel_filter"
	CmdConfirm      Command = "confirm"
	CmdCancel       Command = "cancel"
	CmdMenuDown     Command = "menu_down"
	CmdMenuUp       Command = "menu_up"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For special keys, use tea.KeyType constants (e.g., tea.KeyEnter).
	// For rune keys, use tea.KeyRunes and set Rune field.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}

	// A zero Rune matches any rune
	if kb.Rune == 0 {
		return true
	}

	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetCategories returns all unique categories in a mode's bindings, in
// declaration order.
func (km *Keymap) GetCategories(mode Mode) []string {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var categories []string

	for _, binding := range mb.Bindings {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// GetBindingsByCategory returns bindings grouped by category for a mode.
func (km *Keymap) GetBindingsByCategory(mode Mode) map[string][]KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	result := make(map[string][]KeyBinding)
	for _, binding := range mb.Bindings {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		result[cat] = append(result[cat], binding)
	}
	return result
}

// Bind adds a binding for spec to mode. The new binding is checked before
// the existing ones, so it can shadow a default key.
func (km *Keymap) Bind(mode Mode, spec string, cmd Command, description, category string) error {
	mb, ok := km.Modes[mode]
	if !ok {
		return fmt.Errorf("unknown mode: %s", mode)
	}

	keyType, r, mods, err := ParseKeySpec(spec)
	if err != nil {
		return err
	}

	binding := KeyBinding{
		KeyType:     keyType,
		Rune:        r,
		Modifiers:   mods,
		Command:     cmd,
		Description: description,
		Category:    category,
	}
	mb.Bindings = append([]KeyBinding{binding}, mb.Bindings...)
	return nil
}

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"escape":    tea.KeyEsc,
	"space":     tea.KeySpace,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pageup":    tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"pagedown":  tea.KeyPgDown,
	"f1":        tea.KeyF1,
	"f2":        tea.KeyF2,
	"f3":        tea.KeyF3,
	"f4":        tea.KeyF4,
	"f5":        tea.KeyF5,
}

// ParseKeySpec parses a key specification string into KeyType, Rune, and Modifiers.
// Examples: "ctrl+r", "shift+tab", "j", "enter", "alt+left"
func ParseKeySpec(spec string) (keyType tea.KeyType, r rune, mods Modifier, err error) {
	remaining := strings.ToLower(strings.TrimSpace(spec))
	if len(spec) == 1 {
		// Single characters keep their case: "G" and "g" differ
		remaining = spec
	}

	for {
		if rest, ok := strings.CutPrefix(remaining, "ctrl+"); ok && rest != "" {
			mods |= ModCtrl
			remaining = rest
			continue
		}
		if rest, ok := strings.CutPrefix(remaining, "alt+"); ok && rest != "" {
			mods |= ModAlt
			remaining = rest
			continue
		}
		if rest, ok := strings.CutPrefix(remaining, "shift+"); ok && rest != "" {
			mods |= ModShift
			remaining = rest
			continue
		}
		break
	}

	if remaining == "tab" {
		if mods&ModShift != 0 {
			return tea.KeyShiftTab, 0, mods &^ ModShift, nil
		}
		return tea.KeyTab, 0, mods, nil
	}
	if kt, ok := specialKeys[remaining]; ok {
		return kt, 0, mods, nil
	}

	// ctrl+letter maps onto tea.KeyCtrlA through tea.KeyCtrlZ
	if mods&ModCtrl != 0 && len(remaining) == 1 {
		ch := remaining[0]
		if ch >= 'a' && ch <= 'z' {
			return tea.KeyCtrlA + tea.KeyType(ch-'a'), 0, mods &^ ModCtrl, nil
		}
	}

	runes := []rune(remaining)
	if len(runes) == 1 && mods&ModCtrl == 0 {
		return tea.KeyRunes, runes[0], mods, nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized key spec: %s", spec)
}
