package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// MenuItem is one action in a button row. Shortcut, when enabled, runs the
// action from anywhere in the row.
type MenuItem struct {
	Label    string
	Shortcut key.Binding
	Action   func() tea.Cmd
}

// Menu is a horizontal row of buttons with one focused item.
type Menu struct {
	Items   []MenuItem
	Focused int
}

// NewMenu creates a menu focused on the first item.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves focus with the arrow keys, runs the focused item on Enter and
// runs any item whose shortcut matches.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	for i, item := range m.Items {
		if item.Shortcut.Enabled() && key.Matches(kmsg, item.Shortcut) {
			m.Focused = i
			return m, m.run(i)
		}
	}

	switch {
	case key.Matches(kmsg, Keys.Left, Keys.Up):
		m.Focused = max(m.Focused-1, 0)
	case key.Matches(kmsg, Keys.Right, Keys.Down):
		m.Focused = min(m.Focused+1, len(m.Items)-1)
	case key.Matches(kmsg, Keys.Select):
		return m, m.run(m.Focused)
	}
	return m, nil
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// View renders the buttons side by side.
func (m Menu) View() string {
	buttons := make([]string, 0, 2*len(m.Items))
	for i, item := range m.Items {
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, Button{Label: item.Label, Focused: i == m.Focused}.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
