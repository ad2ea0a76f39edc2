package ui

import (
	"strings"
	"testing"
)

const reset = "\x1b[0m"

func TestRenderLine(t *testing.T) {
	r := NewRenderer(ansiRenderer())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "no tags here",
			expected: "no tags here",
		},
		{
			name:     "levels mixed with text",
			input:    "hello [info] world [ERROR] done",
			expected: "hello \x1b[32m[info]" + reset + " world \x1b[91m[ERROR]" + reset + " done",
		},
		{
			name:     "debug and warn",
			input:    "[DEBUG][Warn]",
			expected: "\x1b[94m[DEBUG]" + reset + "\x1b[93m[Warn]" + reset,
		},
		{
			name:     "unknown tag is grey",
			input:    "[encoder] started",
			expected: "\x1b[90m[encoder]" + reset + " started",
		},
		{
			name:     "nested tag is one unclassified span",
			input:    "[outer[inner]outer]",
			expected: "\x1b[90m[outer[inner]outer]" + reset,
		},
		{
			name:     "unclosed tag runs to end",
			input:    "x [info",
			expected: "x \x1b[90m[info" + reset,
		},
		{
			name:     "tabs inside tag kept",
			input:    "[a\tb]",
			expected: "\x1b[90m[a\tb]" + reset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RenderLine(tt.input)
			if got != tt.expected {
				t.Errorf("RenderLine(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBanner(t *testing.T) {
	r := NewRenderer(ansiRenderer())

	got := r.Banner("a.log")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Banner has %d lines, want 4: %q", len(lines), got)
	}
	if lines[0] != "\x1b[1m"+bannerTitle+reset {
		t.Fatalf("title = %q, want bold %q", lines[0], bannerTitle)
	}
	if lines[1] != "\x1b[1m"+bannerHint+reset {
		t.Fatalf("hint = %q, want bold %q", lines[1], bannerHint)
	}
	if lines[2] != "watching 'a.log'" {
		t.Fatalf("watching line = %q", lines[2])
	}
	if lines[3] != strings.Repeat("-", bannerWidth) {
		t.Fatalf("separator = %q, want %d dashes", lines[3], bannerWidth)
	}
}

func TestBanner_SeparatorFollowsLongPath(t *testing.T) {
	r := NewRenderer(ansiRenderer())
	path := "/var/log/some/deeply/nested/service.log"

	got := r.Banner(path)
	want := strings.Repeat("-", len("watching '"+path+"'")) + "\n"
	if !strings.HasSuffix(got, want) {
		t.Fatalf("Banner = %q, want separator %q", got, want)
	}
}

func TestBannerHintMatchesWidth(t *testing.T) {
	if len(bannerHint) != bannerWidth {
		t.Fatalf("len(bannerHint) = %d, want %d", len(bannerHint), bannerWidth)
	}
}

func TestClearedNotice(t *testing.T) {
	r := NewRenderer(ansiRenderer())

	got := r.ClearedNotice(2048, 0)
	if !strings.HasPrefix(got, "\n") || !strings.HasSuffix(got, "\n") {
		t.Fatalf("ClearedNotice = %q, want it framed by blank lines", got)
	}
	if !strings.Contains(got, clearedText) {
		t.Fatalf("ClearedNotice = %q, want it to contain %q", got, clearedText)
	}
	if !strings.Contains(got, "was 2.0 kB, now 0 B") {
		t.Fatalf("ClearedNotice = %q, want sizes", got)
	}
	if !strings.Contains(got, "\x1b[90m") {
		t.Fatalf("ClearedNotice = %q, want grey styling", got)
	}
}

func TestDiagnostic(t *testing.T) {
	r := NewRenderer(ansiRenderer())
	got := r.Diagnostic("stat log: boom")
	if got != "\x1b[90mlogview: stat log: boom"+reset {
		t.Fatalf("Diagnostic = %q", got)
	}
}
