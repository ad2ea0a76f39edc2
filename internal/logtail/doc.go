// Package logtail tracks a growing log file and splits its lines into
// displayable segments.
//
// # Overview
//
// The package owns the data model of the viewer: a WatchState holding the
// byte offset already shown, the Handle function that advances it for one
// change event, and Tokenize, which breaks a line into plain text and
// bracketed tags. Nothing here touches the terminal; rendering is the ui
// package's job and scheduling is the app package's.
//
// # Watch State
//
// NewWatchState starts at the end of the file, so pre-existing content is not
// replayed. Each EventModified passed to Handle:
//
//  1. Stats the file. A missing file yields a single "waiting" notice.
//  2. Resets the offset to 0 when the file is shorter than the offset
//     (truncation or replacement) and flags the result as Cleared.
//  3. Reads from the offset up to the observed length and returns every
//     newline-terminated line, advancing the offset past them.
//
// An unterminated trailing fragment stays unconsumed and is read again on the
// next event, so a line is never reported twice. Fragments that reach 1 MiB
// are flushed as a line to avoid holding output back forever.
//
// Example usage:
//
//	fs := afero.NewOsFs()
//	st, err := logtail.NewWatchState(fs, "/var/log/app.log")
//	if err != nil {
//		return err
//	}
//	res := logtail.Handle(fs, st, logtail.Event{Kind: logtail.EventModified})
//	for _, line := range res.Lines {
//		fmt.Println(line)
//	}
//
// # Tags
//
// A tag is a run starting at '[' and ending at the ']' that brings the
// bracket depth back to zero, so "[outer[inner]outer]" is one tag. An opening
// bracket that never closes extends to the end of the line. Segment.Name
// returns the lower-cased inner text used for color lookup.
//
// # Backlog
//
// Read returns the last N lines of a file using a ring buffer of size N,
// scanning the file once with O(N) memory.
//
// # Error Handling
//
// NewWatchState errors are fatal for the caller. Handle never returns an
// error value; failures are reported in Result.Err and leave the offset
// where it was.
package logtail
