package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillz/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for short typed answers. Single
// printable keys outside Allowed are dropped before they reach the model.
type AnswerInput struct {
	Model   textinput.Model
	Allowed func(r rune) bool
}

// Digits accepts 0-9.
func Digits(r rune) bool { return r >= '0' && r <= '9' }

// NewAnswerInput creates a focused input holding at most limit characters.
func NewAnswerInput(placeholder string, limit int, allowed func(rune) bool) AnswerInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return AnswerInput{Model: ti, Allowed: allowed}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.Allowed != nil {
		if r := []rune(kmsg.String()); len(r) == 1 && !t.Allowed(r[0]) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input.
func (t AnswerInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(t.Model.View())
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input.
func (t *AnswerInput) Reset() {
	t.Model.Reset()
}
