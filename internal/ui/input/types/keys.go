package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of normal mode. It doubles as the help.KeyMap
// for the footer.
type KeyMap struct {
	Previous   key.Binding
	Next       key.Binding
	First      key.Binding
	Last       key.Binding
	Activate   key.Binding
	Jump       key.Binding
	AutoPlay   key.Binding
	Wrap       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	ClosePopup key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home/gg", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Jump: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to item"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "auto-play"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wrap"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		ClosePopup: key.NewBinding(
			key.WithKeys("esc", "enter", "q"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Activate, k.Jump, k.AutoPlay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.First, k.Last},
		{k.Activate, k.Jump, k.AutoPlay, k.Wrap},
		{k.Help, k.Quit},
	}
}
