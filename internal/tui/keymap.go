package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the session-level keybindings. Toolbar actions carry their
// own bindings; see toolbarItems.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Back     key.Binding
	NextView key.Binding
	PrevView key.Binding

	// Config screen
	ToggleEdit    key.Binding
	ToggleOverlay key.Binding
	Erase         key.Binding

	// Source screen
	Copy       key.Binding
	ToggleDiff key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "?"),
			key.WithHelp("f1/?", "toggle help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to editor"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next screen"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous screen"),
		),
		ToggleEdit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle edit mode"),
		),
		ToggleOverlay: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle overlay"),
		),
		Erase: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "erase document"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y", "c"),
			key.WithHelp("y", "copy source"),
		),
		ToggleDiff: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle changes"),
		),
	}
}
