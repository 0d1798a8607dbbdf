package chart

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screen"
	"github.com/abhisek/showdown/internal/sentiment"
	"github.com/abhisek/showdown/internal/ui/components"
	"github.com/abhisek/showdown/internal/ui/layout"
	"github.com/abhisek/showdown/internal/ui/theme"
)

// NoData is shown when there is nothing to plot.
const NoData = "No data to plot yet!"

// ChartScreen plots the confidence of every round.
type ChartScreen struct {
	history []game.Attempt
}

var _ screen.Screen = (*ChartScreen)(nil)
var _ screen.KeyHintProvider = (*ChartScreen)(nil)

// New snapshots the state's history.
func New(state *game.State) *ChartScreen {
	return &ChartScreen{history: state.History()}
}

func (s *ChartScreen) Init() tea.Cmd {
	return nil
}

func (s *ChartScreen) Title() string {
	return "Sentiment Analysis Results"
}

func (s *ChartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, router.Back()
		}
	}
	return s, nil
}

// LabelColor keys a bar by its label.
func LabelColor(l sentiment.Label) color.Color {
	switch l {
	case sentiment.LabelPositive:
		return theme.Positive
	case sentiment.LabelNegative:
		return theme.Negative
	default:
		return theme.Failed
	}
}

// Bars converts a history into chart bars labelled R1..Rn.
func Bars(history []game.Attempt) []components.Bar {
	bars := make([]components.Bar, 0, len(history))
	for i, a := range history {
		bars = append(bars, components.Bar{
			Label: fmt.Sprintf("R%d", i+1),
			Value: a.Confidence,
			Color: LabelColor(a.Label),
		})
	}
	return bars
}

func (s *ChartScreen) View(width, height int) string {
	if len(s.history) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Accent).
			Render("⚠ " + NoData)
	}

	// title, legend, y title, axis, labels, x title and spacing
	plotRows := height - 10
	if plotRows > 16 {
		plotRows = 16
	}

	c := components.BarChart{
		Bars:   Bars(s.history),
		Height: plotRows,
		XTitle: "Rounds",
		YTitle: "Confidence Score",
	}
	plotWidth := width - 8

	var b strings.Builder
	b.WriteString(renderLegend())
	b.WriteString("\n\n")
	b.WriteString(c.View(plotWidth))

	if shown := c.Fits(plotWidth); shown < len(s.history) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("showing the last %d of %d rounds", shown, len(s.history))))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderLegend() string {
	item := func(c color.Color, name string) string {
		return lipgloss.NewStyle().Foreground(c).Render("■") + " " +
			lipgloss.NewStyle().Foreground(theme.Text).Render(name)
	}
	return item(theme.Positive, "POSITIVE") + "   " +
		item(theme.Negative, "NEGATIVE") + "   " +
		item(theme.Failed, "ERROR")
}
