package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/five82/logview/internal/config"
	"github.com/five82/logview/internal/logtail"
)

// Display receives everything the watcher wants shown. Calls are never
// concurrent.
type Display interface {
	Line(text string)
	Cleared(previous, current int64)
	Diagnostic(msg string)
}

// WatcherOptions configure a Watcher.
type WatcherOptions struct {
	Fs           afero.Fs
	PollInterval time.Duration // zero uses config.DefaultPollInterval
	Notify       bool          // also use filesystem notifications when available
	Logger       zerolog.Logger
}

// Watcher feeds change events for one file into logtail.Handle. Filesystem
// notifications and the poll ticker are consumed by a single goroutine, so the
// WatchState is only ever touched by one handler call at a time.
type Watcher struct {
	fs       afero.Fs
	state    *logtail.WatchState
	display  Display
	logger   zerolog.Logger
	interval time.Duration
	notify   bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	lastSize int64
	lastMod  time.Time
	lastErr  string
}

// NewWatcher creates a Watcher for state. It does not start watching.
func NewWatcher(state *logtail.WatchState, display Display, opts WatcherOptions) (*Watcher, error) {
	if state == nil {
		return nil, fmt.Errorf("watch state cannot be nil")
	}
	if display == nil {
		return nil, fmt.Errorf("display cannot be nil")
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	return &Watcher{
		fs:       fs,
		state:    state,
		display:  display,
		logger:   opts.Logger,
		interval: interval,
		notify:   opts.Notify,
		stopCh:   make(chan struct{}),
		lastSize: state.Length,
	}, nil
}

// Start begins watching. Notifications cover the file's directory so a file
// replaced by rotation is still seen; when the host offers no notification
// mechanism the ticker alone drives the watcher. It returns an error only when
// the directory cannot be watched.
func (w *Watcher) Start(ctx context.Context) error {
	var fsw *fsnotify.Watcher
	if w.notify {
		var err error
		fsw, err = fsnotify.NewWatcher()
		if err != nil {
			w.logger.Warn().Err(err).Msg("filesystem notifications unavailable, polling only")
			fsw = nil
		} else if err := fsw.Add(filepath.Dir(w.state.Path)); err != nil {
			_ = fsw.Close()
			return fmt.Errorf("watch log: %w", err)
		}
	}

	if info, err := w.fs.Stat(w.state.Path); err == nil {
		w.lastMod = info.ModTime()
	}

	w.logger.Info().
		Str("path", w.state.Path).
		Int64("offset", w.state.Offset).
		Dur("poll", w.interval).
		Bool("notify", fsw != nil).
		Msg("watching")

	w.wg.Add(1)
	go w.run(ctx, fsw)
	return nil
}

// Stop halts the watcher and waits for the loop to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if fsw != nil {
		defer fsw.Close()
		events = fsw.Events
		errs = fsw.Errors
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if kind, match := w.translate(ev); match {
				w.dispatch(logtail.Event{Kind: kind, Path: ev.Name})
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			w.report(fmt.Errorf("watch log: %w", err))
		case <-ticker.C:
			if w.changed() {
				w.dispatch(logtail.Event{Kind: logtail.EventModified, Path: w.state.Path})
			}
		}
	}
}

// translate maps a notification to an event kind, ignoring other files in
// the directory.
func (w *Watcher) translate(ev fsnotify.Event) (logtail.EventKind, bool) {
	if filepath.Clean(ev.Name) != w.state.Path {
		return 0, false
	}
	switch {
	case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
		return logtail.EventModified, true
	case ev.Has(fsnotify.Rename):
		return logtail.EventRenamed, true
	case ev.Has(fsnotify.Remove):
		return logtail.EventRemoved, true
	case ev.Has(fsnotify.Chmod):
		return logtail.EventMetadata, true
	default:
		return 0, false
	}
}

// changed reports whether the file's size or modification time moved since
// the previous tick. Stat failures count as a change so Handle can report them.
func (w *Watcher) changed() bool {
	info, err := w.fs.Stat(w.state.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			w.lastSize, w.lastMod = -1, time.Time{}
		}
		return true
	}
	if info.Size() == w.lastSize && info.ModTime().Equal(w.lastMod) {
		return false
	}
	w.lastSize, w.lastMod = info.Size(), info.ModTime()
	return true
}

func (w *Watcher) dispatch(ev logtail.Event) {
	res := logtail.Handle(w.fs, w.state, ev)

	if res.Cleared {
		w.logger.Info().
			Int64("previous_offset", res.PreviousOffset).
			Int64("size", res.Size).
			Msg("log cleared")
		w.display.Cleared(res.PreviousOffset, res.Size)
	}
	for _, line := range res.Lines {
		w.display.Line(line)
	}
	if res.Notice != "" {
		w.logger.Info().Str("event", ev.Kind.String()).Msg(res.Notice)
		w.display.Diagnostic(res.Notice)
	}
	if res.Err != nil {
		w.report(res.Err)
		return
	}
	w.lastErr = ""
}

// report shows err unless it repeats the previous failure, so a persistent
// problem is not printed on every tick.
func (w *Watcher) report(err error) {
	msg := err.Error()
	if msg == w.lastErr {
		return
	}
	w.lastErr = msg
	w.logger.Error().Err(err).Msg("watch failed")
	w.display.Diagnostic(msg)
}
