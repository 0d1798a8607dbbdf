package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle     MascotVariant = iota // Default purple
	MascotSmug                          // Gold, the player is ahead
	MascotBroken                        // Rose, no model loaded
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ─  │
│ A.I │
└─────┘`

const mascotSmug = `┌─────┐
│ ◔ ◔ │
│  ◡  │
│ A.I │
└─────┘`

const mascotBroken = `┌─────┐
│ x x │ ?
│  ~  │
│ A.I │
└─────┘`

// MascotFor picks the mascot for the current game.
func MascotFor(score int, modelLoaded bool) MascotVariant {
	switch {
	case !modelLoaded:
		return MascotBroken
	case score > 0:
		return MascotSmug
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotSmug:
		art = mascotSmug
		fg = theme.ArcadeYellow
	case MascotBroken:
		art = mascotBroken
		fg = theme.Error
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
