package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/koops/pathfinder/internal/ui/theme"
)

// Button runs Action when Trigger is pressed while the button is focused.
type Button struct {
	Label   string
	Focused bool
	Trigger key.Binding
	Action  func() tea.Cmd
}

// NewButton creates a focused button triggered by Enter.
func NewButton(label string, action func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Focused: true,
		Trigger: Keys.Select,
		Action:  action,
	}
}

// Update runs the action on the trigger key.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.Focused || b.Action == nil {
		return b, nil
	}
	if key.Matches(kmsg, b.Trigger) {
		return b, b.Action()
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Focused {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
