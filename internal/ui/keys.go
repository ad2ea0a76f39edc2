package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings. Any key not bound here is ignored.
type keyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "Quit"),
		),
	}
}
