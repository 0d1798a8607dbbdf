// Package theme holds the showdown palette. Warm red stands for the
// player's POSITIVE verdicts and cool blue for the AI's NEGATIVE ones.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Stage
var (
	BgDark = lipgloss.Color("#0F172A")
	BgCard = lipgloss.Color("#1E293B")
	Border = lipgloss.Color("#334155")

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
)

// Neon
var (
	Primary      = lipgloss.Color("#A855F7")
	Secondary    = lipgloss.Color("#14B8A6")
	Accent       = lipgloss.Color("#F59E0B")
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Outcomes
var (
	Success = lipgloss.Color("#22C55E")
	Error   = lipgloss.Color("#F43F5E")
)

// Verdicts
var (
	Positive = lipgloss.Color("#EF4444")
	Negative = lipgloss.Color("#3B82F6")
	Failed   = TextDim
)

// Versus runs from the player's color to the AI's, for banners drawn line
// by line.
var Versus = []color.Color{
	Positive,
	lipgloss.Color("#E0457B"),
	lipgloss.Color("#C04AB0"),
	Primary,
	lipgloss.Color("#7C5CF0"),
	Negative,
}

// Toggle styles for inline option pickers.
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)
