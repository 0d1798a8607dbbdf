package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/ui/theme"
)

// ContentWidth is the inner width for sections inside a Cabinet of
// frameWidth columns: border and padding removed, clamped to 20..60.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// Cabinet draws the double-bordered arcade frame filling width x height
// with content centered in it.
func Cabinet(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// InputCard boxes an input field. The border lights up while the field
// accepts typing.
func InputCard(field string, width int, active bool) string {
	border := theme.Border
	if active {
		border = theme.ArcadeCyan
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1).
		Render(field)
}

// Button is one fixed-width menu entry.
func Button(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !selected {
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
	return style.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + label)
}
