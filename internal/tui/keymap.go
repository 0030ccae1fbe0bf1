package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	NextPane    key.Binding
	ViewKPIs    key.Binding
	ViewPlat    key.Binding
	ViewProp    key.Binding
	ViewMonth   key.Binding
	CycleSeries key.Binding
	Reload      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		ViewKPIs: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "KPIs"),
		),
		ViewPlat: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "platforms"),
		),
		ViewProp: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "properties"),
		),
		ViewMonth: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "monthly"),
		),
		CycleSeries: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next series"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload data"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
