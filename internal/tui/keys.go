package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
	Add   key.Binding
	Edit  key.Binding
	Star  key.Binding
	Sort  key.Binding
	More  key.Binding
	Less  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add recipe"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit recipe"),
		),
		Star: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle star"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		More: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "more portions"),
		),
		Less: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer portions"),
		),
	}
}
