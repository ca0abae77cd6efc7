package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global key bindings
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding
	Results   key.Binding
	Search    key.Binding
}

// DefaultKeyMap returns the default global key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "h", "left"),
			key.WithHelp("esc", "back"),
		),
		Results: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "results"),
		),
		Search: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit search"),
		),
	}
}

// Keys is the global key map instance
var Keys = DefaultKeyMap()
