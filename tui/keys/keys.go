package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the viewer.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Escape     key.Binding
	ToggleKind key.Binding
	ToggleGrid key.Binding
	MoreSteps  key.Binding
	FewerSteps key.Binding
	Refresh    key.Binding
	Pause      key.Binding
	Open       key.Binding
	Theme      key.Binding
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	ToggleKind: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "bar/line")),
	ToggleGrid: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gridlines")),
	MoreSteps:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more steps")),
	FewerSteps: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer steps")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Pause:      key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
	Open:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open series")),
	Theme:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next theme")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
}
