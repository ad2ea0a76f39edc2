package ui

import tea "github.com/charmbracelet/bubbletea"

// Printer displays watcher output through an emit function, normally one
// backed by a running tea.Program.
type Printer struct {
	emit     func(string)
	renderer Renderer
}

// NewPrinter returns a Printer that hands rendered text to emit.
func NewPrinter(emit func(string), r Renderer) *Printer {
	return &Printer{emit: emit, renderer: r}
}

// Line renders and prints one log line.
func (p *Printer) Line(text string) {
	p.emit(p.renderer.RenderLine(text))
}

// Cleared prints the truncation notice.
func (p *Printer) Cleared(previous, current int64) {
	p.emit(p.renderer.ClearedNotice(previous, current))
}

// Diagnostic prints a runtime problem.
func (p *Printer) Diagnostic(msg string) {
	p.emit(p.renderer.Diagnostic(msg))
}

// ProgramPrinter prints above prog's view. Messages go through Send rather
// than a returned command because commands run concurrently and could
// reorder lines; Send also returns once the program has exited.
func ProgramPrinter(prog *tea.Program) func(string) {
	return func(s string) {
		prog.Send(tea.Println(s)())
	}
}
