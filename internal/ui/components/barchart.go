package components

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"fortio.org/safecast"

	"github.com/abhisek/showdown/internal/ui/theme"
)

// Bar is one column of a BarChart. Value is in [0,1].
type Bar struct {
	Label string
	Value float64
	Color color.Color
}

// BarChart renders vertical bars on a 0..1 scale.
type BarChart struct {
	Bars   []Bar
	Height int // plot rows, excluding axis and labels
	XTitle string
	YTitle string
}

const (
	barCols     = 3
	barGap      = 1
	yAxisWidth  = 5 // "1.0 ┤"
	eighthsRow  = 8
	minPlotRows = 4
)

// eighth blocks, index n draws n/8 of a cell.
var partialBlocks = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇"}

func (c BarChart) slotWidth() int {
	w := barCols
	for _, b := range c.Bars {
		if n := lipgloss.Width(b.Label); n > w {
			w = n
		}
	}
	return w + barGap
}

// Fits returns how many bars fit in width. When fewer than len(Bars) fit,
// View draws the most recent ones.
func (c BarChart) Fits(width int) int {
	n := (width - yAxisWidth - 1) / c.slotWidth()
	if n < 0 {
		n = 0
	}
	if n > len(c.Bars) {
		n = len(c.Bars)
	}
	return n
}

// eighths converts a value in [0,1] to filled eighth-cells for rows rows.
func eighths(v float64, rows int) int {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	n, err := safecast.Round[int](v * float64(rows*eighthsRow))
	if err != nil {
		return 0
	}
	return n
}

// View renders the chart within width columns.
func (c BarChart) View(width int) string {
	rows := c.Height
	if rows < minPlotRows {
		rows = minPlotRows
	}

	bars := c.Bars[len(c.Bars)-c.Fits(width):]
	slot := c.slotWidth()
	plotWidth := len(bars) * slot

	axis := lipgloss.NewStyle().Foreground(theme.TextDim)
	var b strings.Builder

	if c.YTitle != "" {
		b.WriteString(axis.Render(c.YTitle))
		b.WriteString("\n")
	}

	filled := make([]int, len(bars))
	for i, bar := range bars {
		filled[i] = eighths(bar.Value, rows)
	}

	for r := rows; r >= 1; r-- {
		switch r {
		case rows:
			b.WriteString(axis.Render("1.0 ┤"))
		case (rows + 1) / 2:
			b.WriteString(axis.Render("0.5 ┤"))
		default:
			b.WriteString(axis.Render("    │"))
		}

		for i, bar := range bars {
			full := filled[i] / eighthsRow
			rem := filled[i] % eighthsRow

			var cell string
			switch {
			case r <= full:
				cell = strings.Repeat("█", barCols)
			case r == full+1 && rem > 0:
				cell = strings.Repeat(partialBlocks[rem], barCols)
			default:
				cell = strings.Repeat(" ", barCols)
			}
			b.WriteString(lipgloss.NewStyle().Foreground(bar.Color).Render(cell))
			b.WriteString(strings.Repeat(" ", slot-barCols))
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render("0.0 └" + strings.Repeat("─", plotWidth)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yAxisWidth))
	for _, bar := range bars {
		b.WriteString(axis.Render(fmt.Sprintf("%-*s", slot, bar.Label)))
	}

	if c.XTitle != "" {
		b.WriteString("\n")
		title := lipgloss.NewStyle().
			Width(plotWidth).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(c.XTitle)
		b.WriteString(strings.Repeat(" ", yAxisWidth) + title)
	}

	return b.String()
}
