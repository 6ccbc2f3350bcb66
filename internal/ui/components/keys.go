package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the key bindings shared by every screen.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Rate      key.Binding
	Select    key.Binding
	Next      key.Binding
	Back      key.Binding
	Report    key.Binding
	StartOver key.Binding
	Quit      key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("↑↓", "Question"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←→", "Rate"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	Rate: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "Set rating"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "ctrl+n"),
		key.WithHelp("n", "Next"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	),
	Report: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "Preview report"),
	),
	StartOver: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Start over"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	),
}
