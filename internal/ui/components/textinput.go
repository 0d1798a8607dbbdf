package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line, always-focused entry box with a character
// budget.
type TextInput struct {
	field textinput.Model
	limit int
}

// NewTextInput returns a focused input. limit <= 0 means unbounded.
func NewTextInput(placeholder string, limit int) TextInput {
	f := textinput.New()
	f.Placeholder = placeholder
	f.Prompt = "› "
	f.CharLimit = max(limit, 0)
	f.Focus()
	return TextInput{field: f, limit: max(limit, 0)}
}

// Init starts the cursor blink.
func (t TextInput) Init() tea.Cmd { return t.field.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.field, cmd = t.field.Update(msg)
	return t, cmd
}

// View renders the field at width columns, prompt included.
func (t *TextInput) View(width int) string {
	t.field.SetWidth(max(width-utf8.RuneCountInString(t.field.Prompt)-1, 1))
	return t.field.View()
}

func (t TextInput) Value() string { return t.field.Value() }

func (t *TextInput) SetValue(s string) { t.field.SetValue(s) }

func (t *TextInput) Clear() { t.field.Reset() }

// Counter reports characters used against the budget, e.g. "12/500".
// Without a budget it is just the count.
func (t TextInput) Counter() string {
	n := utf8.RuneCountInString(t.field.Value())
	if t.limit == 0 {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("%d/%d", n, t.limit)
}
