package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screen"
	"github.com/abhisek/showdown/internal/screens/home"
	"github.com/abhisek/showdown/internal/screens/welcome"
	"github.com/abhisek/showdown/internal/sentiment"
	"github.com/abhisek/showdown/internal/ui/layout"
)

// Options holds the dependencies the UI needs.
type Options struct {
	// Classifier is the loaded sentiment service. It may be degraded, in
	// which case LoadErr says why.
	Classifier sentiment.Classifier
	ModelName  string
	LoadErr    error

	Logger *zap.Logger

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	controller *game.Controller
	width      int
	height     int
}

// newAppModel wires the controller and the first screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	controller := game.NewController(opts.Classifier, opts.Logger)
	homeFactory := func() screen.Screen {
		return home.New(ctx, controller, opts.ModelName, opts.LoadErr)
	}

	var first screen.Screen
	if opts.SkipSplash {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	return AppModel{
		router:     router.New(first),
		controller: controller,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if b, ok := m.router.Active().(screen.Busy); ok && b.Busy() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, router.Back()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// Score and rounds only once past the splash.
	rounds := -1
	if title != "" {
		rounds = m.controller.State().RoundsPlayed()
	}
	header := layout.RenderHeader(title, m.controller.State().Score(), rounds, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
