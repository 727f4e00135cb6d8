// Package view renders the pieces of the ToDo terminal UI from plain state.
//
// Every function here is pure: it takes the styles, the data to draw and a
// width, and returns a string. The root model in package tui owns all state
// and decides what to draw; this package decides how it looks.
//
// # Components
//
//   - [RenderHeader]: the application title bar
//   - [RenderPane]: a bordered box with a title, used for forms and tables
//   - [RenderTable]: header with sort markers, one page of rows, the
//     "No ... found." row for empty data and a pager line
//   - [RenderConfirm], [RenderMenu]: modal overlays for delete prompts and
//     the "Select User" assign menu
//   - [RenderToasts]: the notification stack
//   - [RenderHelp], [RenderHelpBar]: the keymap overlay and the one-line
//     hint bar at the bottom of the screen
//
// # Sizing
//
// Widths passed in are outer widths in terminal cells. [PaneInnerWidth]
// returns how much of a pane is left for content, which is the width the
// caller should hand to [RenderTable] or a form.
package view
