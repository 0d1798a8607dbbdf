// Package router keeps the stack of screens and sends every message to
// the one on top.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showdown/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen. The root screen never closes.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen at the same depth.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Push returns a command that opens s.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Back returns a command that closes the current screen.
func Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Replace returns a command that swaps the current screen for s.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active is the screen on top.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and hands everything else to the
// active screen. Screens that come back into view get Resume called.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()

	case ReplaceScreenMsg:
		r.stack[len(r.stack)-1] = msg.Screen
		return msg.Screen.Init()

	case PopScreenMsg:
		if len(r.stack) == 1 {
			return nil
		}
		r.stack[len(r.stack)-1] = nil
		r.stack = r.stack[:len(r.stack)-1]
		if res, ok := r.Active().(screen.Resumer); ok {
			return res.Resume()
		}
		return nil
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
