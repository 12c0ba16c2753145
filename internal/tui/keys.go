package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all joke page key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Joke actions
	NewJoke key.Binding
	Retry   key.Binding
	Reveal  key.Binding
	Copy    key.Binding
	NextCat key.Binding
	PrevCat key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "close"),
		),

		NewJoke: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n/enter", "new joke"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reveal"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c/y", "copy"),
		),
		NextCat: key.NewBinding(
			key.WithKeys("]", "right", "l"),
			key.WithHelp("]/→", "next category"),
		),
		PrevCat: key.NewBinding(
			key.WithKeys("[", "left"),
			key.WithHelp("[/←", "prev category"),
		),
	}
}

// statusBindings returns the bindings advertised in the status line, in order.
func (k KeyMap) statusBindings() []key.Binding {
	return []key.Binding{k.NewJoke, k.Reveal, k.Copy, k.PrevCat, k.NextCat, k.Help, k.Quit}
}
