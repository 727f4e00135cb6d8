package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MissQuinn-dev/todo-frontend/internal/tui/keymap"
	"github.com/MissQuinn-dev/todo-frontend/internal/tui/styles"
	"github.com/MissQuinn-dev/todo-frontend/internal/util"
)

// helpEntry is one line of the help overlay: every key bound to the same
// command, followed by its description.
type helpEntry struct {
	keys []string
	desc string
}

// groupBindings merges bindings that share a command and description, so
// "j" and "down" show up on one line.
func groupBindings(bindings []keymap.KeyBinding) []helpEntry {
	var entries []helpEntry
	index := make(map[string]int)
	for _, b := range bindings {
		id := string(b.Command) + "\x00" + b.Description
		if i, ok := index[id]; ok {
			entries[i].keys = append(entries[i].keys, b.String())
			continue
		}
		index[id] = len(entries)
		entries = append(entries, helpEntry{keys: []string{b.String()}, desc: b.Description})
	}
	return entries
}

// RenderHelp renders the help overlay for mode: one section per category
// in declaration order.
func RenderHelp(s *styles.Styles, km *keymap.Keymap, mode keymap.Mode, width int) string {
	byCategory := km.GetBindingsByCategory(mode)

	var sections []string
	for _, cat := range km.GetCategories(mode) {
		entries := groupBindings(byCategory[cat])

		keyWidth := 0
		for _, e := range entries {
			keyWidth = max(keyWidth, lipgloss.Width(strings.Join(e.keys, "/")))
		}

		lines := []string{s.HelpCategory.Render(cat)}
		for _, e := range entries {
			keys := util.FitCell(strings.Join(e.keys, "/"), keyWidth, lipgloss.Left)
			lines = append(lines, "  "+s.HelpKey.Render(keys)+"  "+s.HelpDesc.Render(e.desc))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	body := s.ModalTitle.Render("Keyboard shortcuts") + "\n" +
		strings.Join(sections, "\n\n") + "\n\n" +
		s.Muted.Render("Press ? or esc to close")
	return s.Modal.MaxWidth(max(width, 20)).Render(body)
}

// RenderHelpBar renders a one-line hint for cmds in mode, showing the
// first key bound to each, cut to width. Commands with no binding are
// skipped.
func RenderHelpBar(s *styles.Styles, km *keymap.Keymap, mode keymap.Mode, cmds []keymap.Command, width int) string {
	parts := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		bindings := km.GetBindingsForCommand(cmd, mode)
		if len(bindings) == 0 {
			continue
		}
		b := bindings[0]
		parts = append(parts, s.HelpKey.Render(b.String())+" "+s.HelpDesc.Render(strings.ToLower(b.Description)))
	}
	return s.HelpBar.Render(util.TruncateANSI(strings.Join(parts, "  "), max(width, 1)))
}
