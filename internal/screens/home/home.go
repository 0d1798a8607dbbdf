package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screen"
	"github.com/abhisek/showdown/internal/screens/chart"
	"github.com/abhisek/showdown/internal/screens/howto"
	"github.com/abhisek/showdown/internal/screens/showdown"
	"github.com/abhisek/showdown/internal/ui/components"
	"github.com/abhisek/showdown/internal/ui/theme"
)

const (
	arcadeTitle  = "S A R C A S M   S H O W D O W N"
	compactTitle = "SHOWDOWN"
	buttonWidth  = 22
)

var menuLabels = []string{"PLAY", "HOW TO PLAY", "SCORE CHART", "QUIT"}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu       components.Menu
	controller *game.Controller
	modelName  string
	loaded     bool

	// loadErr is handed to the first game screen only.
	loadErr error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. loadErr is the model load failure, if any.
func New(ctx context.Context, controller *game.Controller, modelName string, loadErr error) *HomeScreen {
	h := &HomeScreen{
		controller: controller,
		modelName:  modelName,
		loaded:     loadErr == nil,
		loadErr:    loadErr,
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			loadErr := h.loadErr
			h.loadErr = nil
			return router.Push(showdown.New(ctx, controller, modelName, loadErr))
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return router.Push(howto.New())
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return router.Push(chart.New(controller.State()))
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)
	stats := h.controller.State().Stats()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(MascotFor(stats.Score, h.loaded))))
	}
	sections = append(sections, h.renderStatsBar(stats, cw))
	if !h.loaded {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render("⚠ No sentiment model loaded (see showdown --help)"))
	}
	sections = append(sections, h.menu.View(cw, buttonWidth))

	return components.Cabinet(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderTitle(cw int, compact bool) string {
	title := arcadeTitle
	if compact {
		title = compactTitle
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(title)
}

// renderStatsBar renders score, rounds and model in a double-bordered box.
func (h *HomeScreen) renderStatsBar(stats game.Stats, cw int) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	roundStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	line := fmt.Sprintf("%s  %s",
		scoreStyle.Render(fmt.Sprintf("◆ %d PTS", stats.Score)),
		roundStyle.Render(fmt.Sprintf("▶ %d ROUNDS", stats.RoundsPlayed)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line + "\n" + dim.Render("model "+h.modelName))
}
