package showdown

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/screens/chart"
	"github.com/abhisek/showdown/internal/ui/components"
	"github.com/abhisek/showdown/internal/ui/theme"
)

const (
	sidebarWidth   = 28
	minHistoryRows = 3
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *ShowdownScreen) View(width, height int) string {
	sidebar := s.renderSidebar(sidebarWidth, height)
	mainWidth := width - sidebarWidth - 2
	if mainWidth < 30 {
		mainWidth = 30
	}
	main := s.renderMain(mainWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main)
}

// renderSidebar renders the controls and the running stats.
func (s *ShowdownScreen) renderSidebar(width, height int) string {
	stats := s.controller.State().Stats()

	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	metric := func(name, v string) string {
		gap := width - 4 - lipgloss.Width(name) - lipgloss.Width(v)
		if gap < 1 {
			gap = 1
		}
		return dim.Render(name) + strings.Repeat(" ", gap) + value.Render(v)
	}

	var b strings.Builder
	b.WriteString(heading.Render("Game Controls"))
	b.WriteString("\n")
	b.WriteString(key.Render("Ctrl+R") + dim.Render("  Reset Game"))
	b.WriteString("\n")
	b.WriteString(key.Render("Ctrl+P") + dim.Render("  Show Plot"))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("Current Stats"))
	b.WriteString("\n")
	b.WriteString(metric("🏆 Score", fmt.Sprintf("%d", stats.Score)))
	b.WriteString("\n")
	b.WriteString(metric("🕹 Rounds Played", fmt.Sprintf("%d", stats.RoundsPlayed)))
	if stats.HasSuccessRate {
		b.WriteString("\n")
		b.WriteString(metric("🤖 AI Success", fmt.Sprintf("%.1f%%", stats.SuccessRate*100)))
	}
	b.WriteString("\n\n")
	b.WriteString(dim.Render("model " + s.modelName))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(b.String())
}

func (s *ShowdownScreen) renderMain(width, height int) string {
	state := s.controller.State()
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("🎮 Sarcasm Showdown: Fool the AI! 🎮"))
	b.WriteString("\n\n")

	if s.loadErr != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Error).
			Bold(true).
			Render("⚠ " + s.loadErr.Error() + ". Every analysis will come back as ERROR."))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("Enter your text (sarcastic or genuine):")
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.input.Counter())
	b.WriteString(prompt + strings.Repeat(" ", max(width-lipgloss.Width(prompt)-lipgloss.Width(counter), 1)) + counter)
	b.WriteString("\n")
	b.WriteString(components.InputCard(s.input.View(width-4), width, !s.busy))
	b.WriteString("\n")

	switch {
	case s.busy:
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(frame + " Analyzing..."))
		b.WriteString("\n")
	case state.Phase() == game.PhaseAnalyzed:
		pending, _ := state.Pending()
		b.WriteString(renderResult(pending, width))
		b.WriteString("\n\n")
		b.WriteString(s.sarcasm.View())
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(renderNotice(s.notice))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Error).
			Render("⚠ " + s.errMsg))
		b.WriteString("\n")
	}

	used := lipgloss.Height(b.String())
	b.WriteString("\n")
	b.WriteString(renderHistory(state, height-used-3))

	return b.String()
}

// renderResult renders the pending classification.
func renderResult(a game.Attempt, width int) string {
	line := fmt.Sprintf("AI says: %s %s (%.2f confidence)", a.Label.Emoji(), a.Label, a.Confidence)
	text := lipgloss.NewStyle().
		Foreground(chart.LabelColor(a.Label)).
		Bold(true).
		Render(line)

	bar := components.Meter{Value: a.Confidence, Width: width - 2, Fill: chart.LabelColor(a.Label)}

	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Analysis Result") +
		"\n" + text + "\n" + bar.View()
}

func renderNotice(notice string) string {
	style := lipgloss.NewStyle().Bold(true)
	switch notice {
	case game.VerdictFooled.Message():
		style = style.Foreground(theme.Success)
	case game.VerdictDetected.Message():
		style = style.Foreground(theme.Error)
	default:
		style = style.Foreground(theme.Secondary)
	}
	return style.Render(notice)
}

// renderHistory lists rounds oldest first, trimmed to the latest that fit
// in rows. Only the most recent round carries its score delta.
func renderHistory(state *game.State, rows int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("📜 Game History")
	history := state.History()
	if len(history) == 0 {
		return heading + "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("No rounds yet.")
	}

	if rows < minHistoryRows {
		rows = minHistoryRows
	}
	start := 0
	var lines []string
	if len(history) > rows {
		start = len(history) - rows + 1
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("… %d earlier rounds", start)))
	}

	last, hasLast := state.LastRound()
	for i := start; i < len(history); i++ {
		lines = append(lines, HistoryLine(i+1, history[i], last, hasLast && i == len(history)-1))
	}
	return heading + "\n" + strings.Join(lines, "\n")
}

// HistoryLine formats one round. withDelta adds the score change of the
// round, used for the latest entry only.
func HistoryLine(round int, a game.Attempt, last game.RoundOutcome, withDelta bool) string {
	label := lipgloss.NewStyle().Foreground(chart.LabelColor(a.Label))
	line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Round %d  ", round)) +
		label.Render(fmt.Sprintf("%s (%.2f)", a.Label, a.Confidence))

	if !withDelta {
		return line
	}

	delta := fmt.Sprintf("  %+d", last.Delta)
	switch {
	case last.Delta > 0:
		return line + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(delta)
	case last.Delta < 0:
		return line + lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(delta)
	default:
		return line + lipgloss.NewStyle().Foreground(theme.TextDim).Render(delta)
	}
}
