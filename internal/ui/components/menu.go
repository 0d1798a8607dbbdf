package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// MenuItem is one button of a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a column of buttons. Up and down wrap around; the digits 1..9
// jump straight to an item and fire it.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch k := key.String(); k {
	case "up", "k":
		m.Selected = (m.Selected + len(m.Items) - 1) % len(m.Items)
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "enter":
		return m, m.fire()
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(m.Items) {
			m.Selected = n - 1
			return m, m.fire()
		}
	}
	return m, nil
}

func (m Menu) fire() tea.Cmd {
	if act := m.Items[m.Selected].Action; act != nil {
		return act()
	}
	return nil
}

// View stacks the buttons centered in cw columns.
func (m Menu) View(cw, buttonWidth int) string {
	buttons := make([]string, len(m.Items))
	for i, item := range m.Items {
		buttons[i] = Button(item.Label, i == m.Selected, buttonWidth)
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(buttons, "\n"))
}
