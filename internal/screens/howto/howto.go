package howto

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screen"
	"github.com/abhisek/showdown/internal/ui/layout"
	"github.com/abhisek/showdown/internal/ui/theme"
)

// Instructions is the how-to-play text in Markdown.
var Instructions = fmt.Sprintf(`# How to play

- Enter text that might be sarcastic
- See if the AI detects the sarcasm
- Score points when you fool the AI!
- Positive sentiment + sarcasm = **+%d points**
- Negative sentiment + sarcasm = **-%d points**
- Not sarcastic? The AI's judgment is accepted, no points either way.

## Keys

| Key | Action |
|---|---|
| Enter | Analyze the text |
| ← → | Was it sarcasm? Yes / No |
| Tab | Submit score |
| Ctrl+P | Plot confidence per round |
| Ctrl+R | Reset the game |
| Esc | Back |

> Try something like *"Oh great, another meeting..."*
`, game.FooledPoints, game.DetectedPenalty)

const maxWrap = 80

// HowToScreen renders the instructions.
type HowToScreen struct {
	rendered string
	width    int
}

var _ screen.Screen = (*HowToScreen)(nil)
var _ screen.KeyHintProvider = (*HowToScreen)(nil)

// New creates a HowToScreen.
func New() *HowToScreen {
	return &HowToScreen{}
}

func (h *HowToScreen) Init() tea.Cmd {
	return nil
}

func (h *HowToScreen) Title() string {
	return "How to Play"
}

func (h *HowToScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HowToScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return h, router.Back()
	}
	return h, nil
}

// Render returns the instructions rendered for width columns. Falls back
// to the raw Markdown if glamour fails.
func Render(width int) string {
	wrap := width - 4
	if wrap > maxWrap {
		wrap = maxWrap
	}
	if wrap < 20 {
		wrap = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return Instructions
	}
	out, err := r.Render(Instructions)
	if err != nil {
		return Instructions
	}
	return strings.TrimRight(out, "\n")
}

func (h *HowToScreen) View(width, height int) string {
	if h.rendered == "" || h.width != width {
		h.rendered = Render(width)
		h.width = width
	}

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press Enter to go back")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		h.rendered+"\n\n"+hint)
}
