package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free-text answers.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a styled text input.
func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Update forwards messages to the underlying input.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Prompt renders a dim label above an input.
func Prompt(label string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
