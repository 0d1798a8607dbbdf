package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/showdown/internal/ui/theme"
)

// bannerWidth is the widest line of bannerLines.
const bannerWidth = 76

var bannerLines = []string{
	" ███████╗██╗  ██╗ ██████╗ ██╗    ██╗██████╗  ██████╗ ██╗    ██╗███╗   ██╗",
	" ██╔════╝██║  ██║██╔═══██╗██║    ██║██╔══██╗██╔═══██╗██║    ██║████╗  ██║",
	" ███████╗███████║██║   ██║██║ █╗ ██║██║  ██║██║   ██║██║ █╗ ██║██╔██╗ ██║",
	" ╚════██║██╔══██║██║   ██║██║███╗██║██║  ██║██║   ██║██║███╗██║██║╚██╗██║",
	" ███████║██║  ██║╚██████╔╝╚███╔███╔╝██████╔╝╚██████╔╝╚███╔███╔╝██║ ╚████║",
	" ╚══════╝╚═╝  ╚═╝ ╚═════╝  ╚══╝╚══╝ ╚═════╝  ╚═════╝  ╚══╝╚══╝ ╚═╝  ╚═══╝",
}

// RenderBanner draws SHOWDOWN shading from the player's red to the AI's
// blue. Narrow terminals get a spaced-out single line in the same colors.
func RenderBanner(width int) string {
	if width < bannerWidth {
		return renderCompactBanner()
	}
	out := make([]string, len(bannerLines))
	for i, line := range bannerLines {
		out[i] = lipgloss.NewStyle().
			Foreground(theme.Versus[i%len(theme.Versus)]).
			Bold(true).
			Render(line)
	}
	return strings.Join(out, "\n")
}

func renderCompactBanner() string {
	word := []rune("SHOWDOWN")
	var b strings.Builder
	for i, r := range word {
		if i > 0 {
			b.WriteByte(' ')
		}
		c := theme.Versus[i*len(theme.Versus)/len(word)]
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(r)))
	}
	return b.String()
}
