package components

import "github.com/charmbracelet/bubbles/key"

// SearchBarKeyMap defines key bindings for the search input
type SearchBarKeyMap struct {
	Submit       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Clear        key.Binding
	Suggest      key.Binding
}

// DefaultSearchBarKeyMap returns the default search bar key bindings
func DefaultSearchBarKeyMap() SearchBarKeyMap {
	return SearchBarKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev category"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "clear"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "recent"),
		),
	}
}

// ResultsListKeyMap defines key bindings for result list navigation
type ResultsListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Escape   key.Binding
	Enter    key.Binding
	Filter   key.Binding
}

// DefaultResultsListKeyMap returns the default result list key bindings
func DefaultResultsListKeyMap() ResultsListKeyMap {
	return ResultsListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
	}
}

// AlertKeyMap defines key bindings for alert dialogs
type AlertKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Dismiss key.Binding
}

// DefaultAlertKeyMap returns the default alert key bindings
func DefaultAlertKeyMap() AlertKeyMap {
	return AlertKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}

// Package-level key map instances
var (
	SearchBarKeys   = DefaultSearchBarKeyMap()
	ResultsListKeys = DefaultResultsListKeyMap()
	AlertKeys       = DefaultAlertKeyMap()
)
