package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/five82/logview/internal/config"
	"github.com/five82/logview/internal/logtail"
	"github.com/five82/logview/internal/ui"
)

func TestRun_MissingFileFailsBeforeDrawing(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Path:   filepath.Join(t.TempDir(), "missing.log"),
		Config: config.Default(),
		Stdout: &out,
	})
	if err == nil {
		t.Fatalf("Run returned nil error, want open failure")
	}
	if !strings.Contains(err.Error(), "open log") {
		t.Fatalf("error = %q, want it to mention open log", err.Error())
	}
	if out.Len() != 0 {
		t.Fatalf("Run wrote %q before failing, want nothing", out.String())
	}
}

func TestRun_DirectoryFails(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{Path: t.TempDir(), Stdout: &out})
	if err == nil || !strings.Contains(err.Error(), "not a regular file") {
		t.Fatalf("Run error = %v, want not a regular file", err)
	}
}

func TestRun_QuitKeyExitsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte("[info] ready\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Path:   path,
		Config: config.Default(),
		Stdout: &out,
		Input:  strings.NewReader("q"),
	})
	if err != nil {
		t.Fatalf("Run error = %v, want nil after q", err)
	}
	if !strings.Contains(out.String(), "watching '"+path+"'") {
		t.Fatalf("output = %q, want banner", out.String())
	}
}

func TestBuildHeader(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/logs/app.log", []byte("one\n[info] two\nthree\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	state, err := logtail.NewWatchState(fs, "/logs/app.log")
	if err != nil {
		t.Fatalf("NewWatchState: %v", err)
	}
	r := ui.NewRenderer(lipgloss.NewRenderer(&bytes.Buffer{}))

	got, err := buildHeader(r, fs, state, "app.log", 0)
	if err != nil {
		t.Fatalf("buildHeader error: %v", err)
	}
	if got != r.Banner("app.log") {
		t.Fatalf("buildHeader without backlog = %q, want banner only", got)
	}

	got, err = buildHeader(r, fs, state, "app.log", 2)
	if err != nil {
		t.Fatalf("buildHeader error: %v", err)
	}
	if strings.Contains(got, "one") {
		t.Fatalf("header %q includes a line outside the backlog", got)
	}
	if !strings.HasSuffix(got, "two\nthree\n") {
		t.Fatalf("header = %q, want last two lines", got)
	}
	if !strings.Contains(got, "last 2 lines") {
		t.Fatalf("header = %q, want backlog header", got)
	}
}

func TestBuildHeader_LongBacklogLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := strings.Repeat("x", 2<<20) + "\nshort\n"
	if err := afero.WriteFile(fs, "/logs/app.log", []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	state, err := logtail.NewWatchState(fs, "/logs/app.log")
	if err != nil {
		t.Fatalf("NewWatchState: %v", err)
	}
	r := ui.NewRenderer(lipgloss.NewRenderer(&bytes.Buffer{}))

	got, err := buildHeader(r, fs, state, "app.log", 1)
	if err != nil {
		t.Fatalf("buildHeader error: %v", err)
	}
	if !strings.HasSuffix(got, "short\n") {
		t.Fatalf("header ends with %q, want the last line", got[max(0, len(got)-20):])
	}
}
