package showdown

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screen"
	"github.com/abhisek/showdown/internal/screens/chart"
	"github.com/abhisek/showdown/internal/ui/components"
	"github.com/abhisek/showdown/internal/ui/layout"
)

const (
	spinnerInterval = 80 * time.Millisecond

	// No cap on input length; the classifier sees the whole text.
	inputCharLimit = 0
)

var (
	sarcasmOptions = []string{"Yes", "No"}
	defaultSarcasm = 1 // "No"
)

// ShowdownScreen is the game: type text, see the verdict, report sarcasm.
type ShowdownScreen struct {
	ctx        context.Context
	controller *game.Controller
	modelName  string

	input   components.TextInput
	sarcasm components.Choice

	// busy is set while a classification is in flight; analyze, submit
	// and reset are ignored until it clears.
	busy         bool
	spinnerFrame int

	notice  string // outcome banner after scoring or reset
	errMsg  string // last classification error
	loadErr error  // model load failure, shown until the first analysis
}

var _ screen.Screen = (*ShowdownScreen)(nil)
var _ screen.KeyHintProvider = (*ShowdownScreen)(nil)
var _ screen.Resumer = (*ShowdownScreen)(nil)
var _ screen.Busy = (*ShowdownScreen)(nil)

// New creates the game screen. loadErr, if set, is shown as a banner. A
// result still waiting to be scored comes back with the text it was
// computed for.
func New(ctx context.Context, controller *game.Controller, modelName string, loadErr error) *ShowdownScreen {
	s := &ShowdownScreen{
		ctx:        ctx,
		controller: controller,
		modelName:  modelName,
		input:      components.NewTextInput("Type something like 'Oh great, another meeting...'", inputCharLimit),
		sarcasm:    components.NewChoice("Was this sarcasm?", sarcasmOptions, defaultSarcasm),
		loadErr:    loadErr,
	}
	if state := controller.State(); state.Phase() == game.PhaseAnalyzed {
		s.input.SetValue(state.LastInput())
	}
	return s
}

func (s *ShowdownScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ShowdownScreen) Title() string {
	return "Fool the AI!"
}

// Resume restarts the cursor blink after the chart closes.
func (s *ShowdownScreen) Resume() tea.Cmd {
	return s.input.Init()
}

// Busy reports whether a classification is in flight.
func (s *ShowdownScreen) Busy() bool {
	return s.busy
}

func (s *ShowdownScreen) KeyHints() []layout.KeyHint {
	if s.busy {
		return []layout.KeyHint{
			{Key: "…", Description: "Analyzing"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Analyze"},
	}
	if s.controller.State().Phase() == game.PhaseAnalyzed {
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Sarcasm?"},
			layout.KeyHint{Key: "Tab", Description: "Submit score"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+P", Description: "Plot"},
		layout.KeyHint{Key: "Ctrl+R", Description: "Reset"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *ShowdownScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		return s.handleAnalysisDone(msg)

	case spinnerTickMsg:
		if !s.busy {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ShowdownScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s.analyze()
	case "tab":
		return s.submitScore()
	case "ctrl+r":
		return s.reset()
	case "ctrl+p":
		// The chart would swallow the pending result.
		if s.busy {
			return s, nil
		}
		return s, router.Push(chart.New(s.controller.State()))
	case "left", "right":
		if s.controller.State().Phase() == game.PhaseAnalyzed {
			s.sarcasm, _ = s.sarcasm.Update(msg)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// analyze starts a classification in the background.
func (s *ShowdownScreen) analyze() (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	text, ok := game.NormalizeInput(s.input.Value())
	if !ok {
		return s, nil
	}

	s.busy = true
	s.spinnerFrame = 0
	s.notice = ""
	s.errMsg = ""
	s.loadErr = nil

	ctx, ctrl := s.ctx, s.controller
	classify := func() tea.Msg {
		return analysisDoneMsg{Text: text, Result: ctrl.Classify(ctx, text)}
	}
	return s, tea.Batch(classify, spinnerTick())
}

func (s *ShowdownScreen) handleAnalysisDone(msg analysisDoneMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	s.sarcasm = components.NewChoice(s.sarcasm.Prompt, sarcasmOptions, defaultSarcasm)

	out := s.controller.Apply(s.ctx, game.Analyzed{Text: msg.Text, Result: msg.Result})
	if out.Err != nil && !errors.Is(out.Err, game.ErrEmptyInput) {
		s.errMsg = out.Err.Error()
	}
	return s, nil
}

func (s *ShowdownScreen) submitScore() (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	out := s.controller.Apply(s.ctx, game.SubmitScore{Sarcastic: s.sarcasm.Value() == "Yes"})
	if out.Err != nil {
		// Nothing analyzed yet.
		return s, nil
	}

	s.notice = out.Round.Verdict.Message()
	s.errMsg = ""
	s.input.Clear()
	s.sarcasm = components.NewChoice(s.sarcasm.Prompt, sarcasmOptions, defaultSarcasm)
	return s, nil
}

func (s *ShowdownScreen) reset() (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	s.controller.Apply(s.ctx, game.Reset{})
	s.input.Clear()
	s.sarcasm = components.NewChoice(s.sarcasm.Prompt, sarcasmOptions, defaultSarcasm)
	s.errMsg = ""
	s.notice = "🔄 Game reset"
	return s, nil
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
