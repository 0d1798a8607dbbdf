// Package screen defines what the router needs from a screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showdown/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title goes in the header. Empty hides the header stats.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Busy is implemented by screens that run work in the background. The app
// keeps such a screen on top while Busy reports true.
type Busy interface {
	Busy() bool
}

// Resumer is told when the screen above it closes.
type Resumer interface {
	Resume() tea.Cmd
}
