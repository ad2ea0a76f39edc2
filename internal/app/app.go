package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/five82/logview/internal/config"
	"github.com/five82/logview/internal/logging"
	"github.com/five82/logview/internal/logtail"
	"github.com/five82/logview/internal/ui"
)

// Options configure a viewer run.
type Options struct {
	Path   string
	Config config.Config
	Stdout io.Writer // nil uses os.Stdout
	Input  io.Reader // nil reads keys from the terminal
}

// Run shows new content of opts.Path until the user quits or ctx is
// cancelled. Errors are returned only for startup failures, before anything
// is drawn.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config.Normalize()
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	logger, closer, err := logging.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	fs := afero.NewOsFs()
	state, err := logtail.NewWatchState(fs, path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Built before the watcher starts; afterwards only the watcher reads state.
	renderer := ui.NewRenderer(lipgloss.NewRenderer(out))
	header, err := buildHeader(renderer, fs, state, opts.Path, cfg.Backlog)
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{tea.WithOutput(out)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	program := ui.NewProgram(ctx, progOpts...)
	printer := ui.NewPrinter(ui.ProgramPrinter(program), renderer)

	watcher, err := NewWatcher(state, printer, WatcherOptions{
		Fs:           fs,
		PollInterval: cfg.PollInterval,
		Notify:       cfg.Notify,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	// Watcher output waits for the program's event loop, so it lands below
	// the header.
	if _, err := io.WriteString(out, header); err != nil {
		cancel()
		watcher.Stop()
		return fmt.Errorf("write banner: %w", err)
	}

	_, err = program.Run()
	// Printing returns once the program has exited, so Stop cannot block.
	watcher.Stop()

	switch {
	case err == nil:
		logger.Info().Msg("quit")
		return nil
	case errors.Is(err, tea.ErrInterrupted),
		errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		logger.Info().Err(err).Msg("stopped")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}

// buildHeader returns the banner and, when requested, the last backlog lines
// that were already in the file.
func buildHeader(r ui.Renderer, fs afero.Fs, state *logtail.WatchState, display string, backlog int) (string, error) {
	var b strings.Builder
	b.WriteString(r.Banner(display))
	if backlog <= 0 {
		return b.String(), nil
	}
	lines, err := logtail.Read(fs, state.Path, backlog, state.Offset)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return b.String(), nil
	}
	b.WriteString(r.BacklogHeader(len(lines), state.Length))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(r.RenderLine(line))
		b.WriteString("\n")
	}
	return b.String(), nil
}
