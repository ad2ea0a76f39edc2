// Package app wires the log viewer together.
//
// # Overview
//
// Run is the composition root: it loads nothing itself but takes a resolved
// config.Config, opens the diagnostics log, establishes the WatchState for
// the target file, prints the banner, and then runs two activities side by
// side until the user quits:
//
//   - Watcher: a goroutine that merges fsnotify events for the file's
//     directory with a poll ticker (100ms by default) and passes each change
//     to logtail.Handle, forwarding the result to a Display.
//   - The Bubble Tea program from package ui, which owns the terminal and
//     exits on 'q', Escape or Ctrl+C.
//
// The two share nothing but the program handle the Display prints through.
// The WatchState is only touched from the watcher goroutine, and because
// notifications and ticks are received by one select loop, handler calls
// never overlap.
//
// # Data Flow
//
//	Run()
//	 ├─> logging.Open()          diagnostics file (optional)
//	 ├─> logtail.NewWatchState() offset = current length (fatal on error)
//	 ├─> Watcher.Start()         fsnotify + ticker goroutine
//	 ├─> banner / backlog        written to stdout
//	 └─> program.Run()           blocks until quit
//
//	Watcher loop:
//	 fsnotify event ─┐
//	                 ├─> logtail.Handle() ─> Display.Cleared / Line / Diagnostic
//	 poll tick ──────┘   (tick only when size or mtime moved)
//
// # Error Handling
//
// Fatal (returned from Run before the UI starts):
//   - target missing, unreadable, or a directory
//   - the file's directory cannot be watched
//   - the diagnostics log cannot be opened
//
// Transient (shown as a diagnostic line, watching continues):
//   - stat/open/read failures during a tick
//   - errors reported by the notification layer
//
// A failure that repeats on consecutive ticks is shown once.
package app
