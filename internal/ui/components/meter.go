package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/ui/theme"
)

const meterSuffix = 8 // "  100.0%"

// left-aligned eighth blocks, index n fills n/8 of a cell.
var meterPartials = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// Meter is a one-line horizontal gauge for a value in [0,1], drawn with
// eighth-cell precision and followed by the percentage.
type Meter struct {
	Value float64
	Width int
	Fill  color.Color
}

func (m Meter) View() string {
	cells := max(m.Width-meterSuffix, 4)
	n := eighths(m.Value, cells)
	full, part := n/eighthsRow, n%eighthsRow

	fill := m.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	bar := strings.Repeat("█", full) + meterPartials[part]
	used := full
	if part > 0 {
		used++
	}

	return lipgloss.NewStyle().Foreground(fill).Render(bar) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-used)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %5.1f%%", clamp01(m.Value)*100))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
