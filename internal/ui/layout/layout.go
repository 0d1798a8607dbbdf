// Package layout draws the chrome around every screen: the scoreboard
// header, the key-hint footer and the too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/ui/theme"
)

// Smallest terminal the game draws in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "Sarcasm Showdown"

// KeyHint is a key and what it does, shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	body := fmt.Sprintf("Terminal too small!\n\nThe showdown needs %d x %d.\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(body))
}

// RenderHeader draws the brand on the left, the screen title centered and
// the scoreboard on the right. rounds < 0 hides the scoreboard.
func RenderHeader(title string, score, rounds int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if rounds >= 0 {
		board := lipgloss.NewStyle().Foreground(theme.Accent)
		right = board.Render(fmt.Sprintf("◆ %d pts", score)) + "   " +
			board.Render(fmt.Sprintf("▶ %d rounds", rounds)) + " "
	}

	return bar(spread(left, center, right, max(width-4, 0)), width)
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(" "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, giving content whatever
// height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays out three segments in inner columns with center as close to
// the middle as the left segment allows.
func spread(left, center, right string, inner int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max((inner-cw)/2-lw, 1)
	gapR := max(inner-lw-gapL-cw-rw, 1)
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}
