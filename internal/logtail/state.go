package logtail

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// maxPartialLine bounds how long an unterminated fragment is held back before
// it is emitted as a line of its own.
const maxPartialLine = 1024 * 1024

// ErrNotRegular is returned when the watched path is a directory.
var ErrNotRegular = errors.New("not a regular file")

// WatchState tracks how much of a file has already been displayed.
type WatchState struct {
	Path   string
	Offset int64 // bytes from the start already consumed
	Length int64 // file length at the last successful stat

	missing bool
}

// NewWatchState opens path and positions the offset at its current end, so
// only content appended afterwards is reported.
func NewWatchState(fs afero.Fs, path string) (*WatchState, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open log %s: %w", path, ErrNotRegular)
	}
	return &WatchState{Path: path, Offset: info.Size(), Length: info.Size()}, nil
}

// EventKind classifies a filesystem change.
type EventKind int

const (
	EventModified EventKind = iota
	EventMetadata
	EventRenamed
	EventRemoved
)

func (k EventKind) String() string {
	switch k {
	case EventModified:
		return "modified"
	case EventMetadata:
		return "metadata changed"
	case EventRenamed:
		return "renamed"
	case EventRemoved:
		return "removed"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one change notification for the watched file.
type Event struct {
	Kind EventKind
	Path string
}

// Result is what a single Handle call produced, in display order: the
// cleared notice (if any), then Lines, then Notice and Err.
type Result struct {
	Cleared        bool
	PreviousOffset int64 // offset discarded by the truncation
	Size           int64 // file length observed by this call

	Lines  []string // complete lines, line endings stripped
	Notice string   // informational message for non-content events
	Err    error    // transient failure; offset was left untouched
}

// Handle applies ev to st. Only EventModified reads the file; the other kinds
// produce a notice and leave the offset alone.
func Handle(fs afero.Fs, st *WatchState, ev Event) Result {
	if ev.Kind != EventModified {
		path := ev.Path
		if path == "" {
			path = st.Path
		}
		return Result{Notice: fmt.Sprintf("%s '%s'", ev.Kind, path), Size: st.Length}
	}
	return st.readAppended(fs)
}

func (st *WatchState) readAppended(fs afero.Fs) Result {
	info, err := fs.Stat(st.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if st.missing {
				return Result{}
			}
			st.missing = true
			return Result{Notice: fmt.Sprintf("waiting for '%s'", st.Path)}
		}
		return Result{Err: fmt.Errorf("stat log: %w", err)}
	}
	st.missing = false

	res := Result{Size: info.Size()}
	st.Length = res.Size
	offset := st.Offset
	cleared := res.Size < offset
	if cleared {
		offset = 0
	}
	if res.Size == offset {
		st.commit(&res, cleared, offset)
		return res
	}

	file, err := fs.Open(st.Path)
	if err != nil {
		res.Err = fmt.Errorf("open log: %w", err)
		return res
	}
	defer file.Close()

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		res.Err = fmt.Errorf("seek log: %w", err)
		return res
	}

	lines, consumed, err := readLines(io.LimitReader(file, res.Size-offset))
	if err != nil {
		res.Err = fmt.Errorf("read log: %w", err)
		return res
	}
	res.Lines = lines
	st.commit(&res, cleared, offset+consumed)
	return res
}

// commit moves the offset once a tick has succeeded. A truncation seen by a
// failed tick is detected again, and reported, by the next one.
func (st *WatchState) commit(res *Result, cleared bool, offset int64) {
	if cleared {
		res.Cleared = true
		res.PreviousOffset = st.Offset
	}
	st.Offset = offset
}

// readLines returns the newline-terminated lines in r and the number of bytes
// they span. A trailing fragment is left unconsumed unless it has grown past
// maxPartialLine.
func readLines(r io.Reader) ([]string, int64, error) {
	br := bufio.NewReader(r)
	var (
		lines    []string
		consumed int64
	)
	for {
		chunk, err := br.ReadBytes('\n')
		switch {
		case len(chunk) > 0 && chunk[len(chunk)-1] == '\n':
			lines = append(lines, trimEOL(chunk))
			consumed += int64(len(chunk))
		case len(chunk) >= maxPartialLine:
			lines = append(lines, trimEOL(chunk))
			consumed += int64(len(chunk))
		}
		if err == io.EOF {
			return lines, consumed, nil
		}
		if err != nil {
			return nil, 0, err
		}
	}
}

func trimEOL(b []byte) string {
	b = bytes.TrimSuffix(b, []byte("\n"))
	b = bytes.TrimSuffix(b, []byte("\r"))
	return string(b)
}
