package ui

import (
	"strings"
	"testing"
)

func TestPrinter(t *testing.T) {
	var printed []string
	p := NewPrinter(func(s string) { printed = append(printed, s) }, NewRenderer(ansiRenderer()))

	p.Line("a [warn] b")
	p.Cleared(10, 0)
	p.Diagnostic("oops")

	if len(printed) != 3 {
		t.Fatalf("printed %d messages, want 3", len(printed))
	}
	if printed[0] != "a \x1b[93m[warn]"+reset+" b" {
		t.Fatalf("line = %q", printed[0])
	}
	if !strings.Contains(printed[1], clearedText) {
		t.Fatalf("cleared = %q, want notice", printed[1])
	}
	if !strings.Contains(printed[2], "logview: oops") {
		t.Fatalf("diagnostic = %q", printed[2])
	}
}
