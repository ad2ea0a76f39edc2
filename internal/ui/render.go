package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/logview/internal/logtail"
)

const (
	bannerTitle = "log viewer"
	bannerHint  = "press 'q' or 'escape' to exit"

	// bannerWidth is the minimum separator length.
	bannerWidth = 29

	clearedText = "<cleared logfile>"
)

// Renderer turns log lines and viewer messages into styled terminal text.
type Renderer struct {
	theme Theme
}

// NewRenderer returns a Renderer drawing with r's color profile.
func NewRenderer(r *lipgloss.Renderer) Renderer {
	return Renderer{theme: NewTheme(r)}
}

// RenderLine styles every tag in line and passes plain text through. Each
// tag carries its own reset, so no color reaches the neighbouring text.
func (r Renderer) RenderLine(line string) string {
	var b strings.Builder
	for _, seg := range logtail.Tokenize(line) {
		if !seg.Tag {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(r.theme.TagStyle(seg.Name()).Render(seg.Text))
	}
	return b.String()
}

// Banner returns the startup header for path, newline terminated.
func (r Renderer) Banner(path string) string {
	watching := fmt.Sprintf("watching '%s'", path)
	width := max(bannerWidth, lipgloss.Width(watching))

	var b strings.Builder
	b.WriteString(r.theme.Banner.Render(bannerTitle))
	b.WriteString("\n")
	b.WriteString(r.theme.Banner.Render(bannerHint))
	b.WriteString("\n")
	b.WriteString(watching)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n")
	return b.String()
}

// ClearedNotice is shown once per truncation, framed by blank lines.
func (r Renderer) ClearedNotice(previous, current int64) string {
	detail := fmt.Sprintf("%s (was %s, now %s)", clearedText,
		humanize.Bytes(uint64(max(previous, 0))),
		humanize.Bytes(uint64(max(current, 0))))
	return "\n" + r.theme.Notice.Render(detail) + "\n"
}

// Diagnostic formats a runtime problem that does not stop the viewer.
func (r Renderer) Diagnostic(msg string) string {
	return r.theme.Notice.Render("logview: " + msg)
}

// BacklogHeader introduces lines that were already in the file at startup.
func (r Renderer) BacklogHeader(lines int, size int64) string {
	return r.theme.Notice.Render(fmt.Sprintf("last %d lines of %s", lines, humanize.Bytes(uint64(max(size, 0)))))
}
