// Package ui draws the log viewer in the terminal.
//
// Rendering is plain inline output rather than a full-screen layout: the
// banner is written before the Bubble Tea program starts, and every log line
// is printed above the program's empty view so the terminal's own scrollback
// keeps the history. The program itself only listens for the quit keys.
//
//   - theme.go: tag name to lipgloss style lookup
//   - render.go: line, banner, notice and diagnostic rendering
//   - app.go: the input-only tea.Model
//   - printer.go: adapter from watcher output to the running program
//   - keys.go: key bindings
package ui
