package ui

import "charm.land/bubbles/v2/key"

// KeyMap lists the bindings the prompt understands. Plain text input is
// handled separately.
type KeyMap struct {
	Quit       key.Binding
	EOF        key.Binding
	Submit     key.Binding
	Backspace  key.Binding
	DeleteWord key.Binding
	Delete     key.Binding
	Clear      key.Binding
	Left       key.Binding
	Right      key.Binding
	Home       key.Binding
	End        key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		EOF: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "quit on empty line, else delete forward"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit line"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "shift+backspace"),
			key.WithHelp("backspace", "delete character or selection"),
		),
		DeleteWord: key.NewBinding(
			key.WithKeys("ctrl+w", "ctrl+h", "ctrl+backspace", "alt+backspace", "ctrl+7", "ctrl+_"),
			key.WithHelp("ctrl+w", "delete word"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("delete", "delete forward"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear line"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+left", "ctrl+left", "ctrl+shift+left"),
			key.WithHelp("←", "move left (shift selects, ctrl jumps)"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "shift+right", "ctrl+right", "ctrl+shift+right"),
			key.WithHelp("→", "move right (shift selects, ctrl jumps)"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("ctrl+a", "start of line"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("ctrl+e", "end of line"),
		),
	}
}
