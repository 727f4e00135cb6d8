// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// Every network call the UI makes runs as a [tea.Cmd] built by one of the
// factories in this package and reports back as one of the message types
// defined here. Keeping both in one place gives:
//
//   - A single source of truth for what the event loop can receive
//   - Commands that can be run and inspected in tests without a program
//
// Message types are exported so the root tui package and its tests can
// construct them directly.
package msg
