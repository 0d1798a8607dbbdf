package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/ui/theme"
)

// Choice is a horizontal single-choice selector.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int
}

// NewChoice creates a selector with the option at initial preselected.
func NewChoice(prompt string, options []string, initial int) Choice {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return Choice{
		Prompt:   prompt,
		Options:  options,
		Selected: initial,
	}
}

// Update moves the selection with left/right.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// Value returns the selected option.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the prompt followed by the options on one line.
func (c Choice) View() string {
	parts := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			parts = append(parts, theme.ButtonActive.Render("▸ "+opt))
		} else {
			parts = append(parts, theme.ButtonInactive.Render("  "+opt))
		}
	}
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt)
	return prompt + "  " + strings.Join(parts, " ")
}
