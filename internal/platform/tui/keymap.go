package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a play session.
type KeyMap struct {
	North    key.Binding
	South    key.Binding
	West     key.Binding
	East     key.Binding
	CursorN  key.Binding
	CursorS  key.Binding
	CursorW  key.Binding
	CursorE  key.Binding
	Interact key.Binding
	Center   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.Interact, k.Center, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.West, k.East},
		{k.CursorN, k.CursorS, k.CursorW, k.CursorE},
		{k.Interact, k.Center, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings: WASD/arrows walk, vim keys
// steer the target cursor, enter interacts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "walk north"),
		),
		South: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "walk south"),
		),
		West: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "walk west"),
		),
		East: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "walk east"),
		),
		CursorN: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "cursor north"),
		),
		CursorS: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "cursor south"),
		),
		CursorW: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "cursor west"),
		),
		CursorE: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "cursor east"),
		),
		Interact: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick up / drop / merge"),
		),
		Center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cursor to player"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
