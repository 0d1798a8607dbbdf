package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/showdown/internal/ui/theme"
)

func TestEighths(t *testing.T) {
	tests := []struct {
		v    float64
		rows int
		want int
	}{
		{0, 8, 0},
		{1, 8, 64},
		{0.5, 8, 32},
		{1.7, 4, 32},
		{-0.2, 4, 0},
		{0.82, 1, 7},
		{0.95, 10, 76},
	}
	for _, tt := range tests {
		if got := eighths(tt.v, tt.rows); got != tt.want {
			t.Errorf("eighths(%v, %d) = %d, want %d", tt.v, tt.rows, got, tt.want)
		}
	}
}

func TestBarChart_View(t *testing.T) {
	c := BarChart{
		Bars: []Bar{
			{Label: "R1", Value: 1, Color: theme.Positive},
			{Label: "R2", Value: 0, Color: theme.Failed},
		},
		Height: 4,
		XTitle: "Rounds",
		YTitle: "Confidence Score",
	}
	view := c.View(60)

	for _, want := range []string{"Confidence Score", "Rounds", "R1", "R2", "1.0 ┤", "0.0 └"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	// A full bar fills every plot row.
	if n := strings.Count(view, "███"); n != 4 {
		t.Errorf("expected 4 full cells, got %d:\n%s", n, view)
	}
}

func TestBarChart_FitsShowsLatest(t *testing.T) {
	var bars []Bar
	for i := 0; i < 30; i++ {
		bars = append(bars, Bar{Label: fmt.Sprintf("R%d", i+1), Value: 0.5, Color: theme.Negative})
	}
	c := BarChart{Bars: bars, Height: 4}

	// (26 - 5 - 1) / 4 = 5 slots.
	if got := c.Fits(26); got != 5 {
		t.Fatalf("Fits(26) = %d, want 5", got)
	}
	view := c.View(26)
	if strings.Contains(view, "R25") || strings.Contains(view, "R1 ") {
		t.Errorf("older bars should be dropped:\n%s", view)
	}
	if !strings.Contains(view, "R26") || !strings.Contains(view, "R30") {
		t.Errorf("latest bar should be drawn:\n%s", view)
	}
}
