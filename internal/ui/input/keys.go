package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings that are not passed through to the search box
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Home  key.Binding
	End   key.Binding
	Open  key.Binding
	Help  key.Binding
	Quit  key.Binding
	Force key.Binding
}

// DefaultKeyMap returns the default bindings. Printable keys are left to the
// text input so every letter can be typed.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next"),
		),
		Home: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "last"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Open, k.Help, k.Quit},
	}
}
