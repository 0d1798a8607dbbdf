package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screens/home"
	"github.com/abhisek/showdown/internal/screens/welcome"
)

func TestNewAppModel_StartsOnSplash(t *testing.T) {
	m := newAppModel(context.Background(), Options{ModelName: "none"})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.router.Active())
	}
}

func TestNewAppModel_SkipSplash(t *testing.T) {
	m := newAppModel(context.Background(), Options{SkipSplash: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(context.Background(), Options{SkipSplash: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestAppModel_EscPopsOnlyAboveHome(t *testing.T) {
	m := newAppModel(context.Background(), Options{SkipSplash: true})

	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc on the home screen should do nothing")
	}

	// PLAY
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAppModel_ViewShowsHeaderStats(t *testing.T) {
	m := newAppModel(context.Background(), Options{SkipSplash: true, ModelName: "lexicon:test"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(AppModel)

	frame := m.render()
	if !strings.Contains(frame, "0 pts") || !strings.Contains(frame, "0 rounds") {
		t.Errorf("expected score and rounds in header:\n%s", frame)
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(context.Background(), Options{SkipSplash: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = updated.(AppModel)

	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestAppModel_EscHeldWhileAnalyzing(t *testing.T) {
	m := newAppModel(context.Background(), Options{SkipSplash: true})

	// PLAY
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(cmd())

	for _, r := range "meh" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Fatal("expected the analysis to start")
	}

	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc should be ignored while a result is pending")
	}
	if m.router.Depth() != 2 {
		t.Errorf("expected to stay on the game screen, depth %d", m.router.Depth())
	}
}
