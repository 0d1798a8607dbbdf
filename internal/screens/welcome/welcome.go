package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screen"
	"github.com/abhisek/showdown/internal/ui/theme"
)

const (
	frameInterval = 80 * time.Millisecond

	// The masks close in for approachFrames, then the banner shows at
	// revealFrame.
	approachFrames = 10
	revealFrame    = approachFrames + 4

	startGap = 32
	endGap   = 6
)

const playerMask = `╭─────╮
│ ^ ^ │
│  ◡  │
╰─────╯
  YOU  `

const aiMask = `╭─────╮
│ ◉ ◉ │
│  ─  │
╰─────╯
  A.I  `

type frameMsg struct{}

// WelcomeScreen is the splash: the player's mask and the AI's mask slide
// together into a face-off, then the title drops in. Any key moves on.
type WelcomeScreen struct {
	homeFactory func() screen.Screen
	frame       int
	done        bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New returns a splash that hands over to homeFactory() on the first key.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frame++
		return w, nextFrame()

	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.Replace(w.homeFactory())
	}
	return w, nil
}

// gap is the distance between the masks at the current frame.
func (w *WelcomeScreen) gap() int {
	step := (startGap - endGap + approachFrames - 1) / approachFrames
	return max(startGap-w.frame*step, endGap)
}

func (w *WelcomeScreen) View(width, height int) string {
	player := lipgloss.NewStyle().Foreground(theme.Positive).Render(playerMask)
	ai := lipgloss.NewStyle().Foreground(theme.Negative).Render(aiMask)

	middle := strings.Repeat(" ", w.gap())
	if w.frame >= approachFrames {
		vs := theme.ArcadeYellow
		if w.frame%4 >= 2 {
			vs = theme.Accent
		}
		middle = lipgloss.NewStyle().
			Width(endGap).
			Height(lipgloss.Height(playerMask)).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(vs).
			Bold(true).
			Render("VS")
	}

	sections := []string{lipgloss.JoinHorizontal(lipgloss.Center, player, middle, ai)}

	if w.frame >= revealFrame {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Can you fool the AI?")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
