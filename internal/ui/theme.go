package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tagColors maps a tag's lower-cased inner text to its foreground color.
var tagColors = map[string]lipgloss.Color{
	"debug": lipgloss.Color("12"), // blue
	"info":  lipgloss.Color("2"),  // dark green
	"warn":  lipgloss.Color("11"), // yellow
	"error": lipgloss.Color("9"),  // red
}

// unclassifiedColor is used for any other bracketed text.
const unclassifiedColor = lipgloss.Color("8") // dark grey

// Theme holds the styles used to draw the viewer.
type Theme struct {
	Tags         map[string]lipgloss.Style
	Unclassified lipgloss.Style
	Banner       lipgloss.Style
	Notice       lipgloss.Style
}

// NewTheme builds the theme against r, which decides the color profile.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	tagStyle := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().
			Foreground(c).
			TabWidth(lipgloss.NoTabConversion)
	}

	tags := make(map[string]lipgloss.Style, len(tagColors))
	for name, c := range tagColors {
		tags[name] = tagStyle(c)
	}
	return Theme{
		Tags:         tags,
		Unclassified: tagStyle(unclassifiedColor),
		Banner:       r.NewStyle().Bold(true),
		Notice:       r.NewStyle().Foreground(unclassifiedColor),
	}
}

// TagStyle returns the style for a tag name, falling back to Unclassified.
func (t Theme) TagStyle(name string) lipgloss.Style {
	if style, ok := t.Tags[strings.ToLower(name)]; ok {
		return style
	}
	return t.Unclassified
}
