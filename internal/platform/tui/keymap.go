package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the terminal host.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
	Move       key.Binding // Help only: the mouse moves the player
	Cycle      key.Binding // Help only: a mouse click cycles the color
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Cycle, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Cycle},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Move: key.NewBinding(
			key.WithKeys("mouse"),
			key.WithHelp("mouse", "move"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("click"),
			key.WithHelp("click", "change color"),
		),
	}
}
