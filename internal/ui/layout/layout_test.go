package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.False(t, IsTooSmall(80, 24))
	assert.True(t, IsTooSmall(79, 24))
	assert.True(t, IsTooSmall(120, 23))
}

func TestRenderHeader_Scoreboard(t *testing.T) {
	out := ansi.Strip(RenderHeader("Showdown", 12, 3, 100))
	assert.Contains(t, out, brand)
	assert.Contains(t, out, "Showdown")
	assert.Contains(t, out, "◆ 12 pts")
	assert.Contains(t, out, "▶ 3 rounds")

	hidden := ansi.Strip(RenderHeader("", 12, -1, 100))
	assert.NotContains(t, hidden, "pts")
}

func TestRenderFooter(t *testing.T) {
	out := ansi.Strip(RenderFooter([]KeyHint{{"Esc", "Back"}, {"Ctrl+C", "Quit"}}, 80))
	assert.Contains(t, out, "Esc Back   Ctrl+C Quit")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("x", 0, 0, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	assert.Equal(t, 30, strings.Count(frame, "\n")+1)
}

func TestSpread_KeepsMinimumGaps(t *testing.T) {
	assert.Equal(t, "a b c", spread("a", "b", "c", 0))
	assert.Equal(t, "a   b    c", spread("a", "b", "c", 10))
}
