// Package editor implements the notes entry screen: paste or type notes
// directly, or load them from a file (PDF, PPTX, plain text).
package editor

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/notes"
	"github.com/studyowl/studyowl/internal/router"
	"github.com/studyowl/studyowl/internal/screen"
	"github.com/studyowl/studyowl/internal/session"
	"github.com/studyowl/studyowl/internal/ui/components"
	"github.com/studyowl/studyowl/internal/ui/layout"
	"github.com/studyowl/studyowl/internal/ui/theme"
)

type focusArea int

const (
	focusText focusArea = iota
	focusPath
)

// EditorScreen lets the user enter or load study notes.
type EditorScreen struct {
	state *session.State

	text   textarea.Model
	path   textinput.Model
	focus  focusArea
	status string
	isErr  bool
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates the editor screen, pre-filled with the session's current
// notes.
func New(state *session.State) *EditorScreen {
	ta := textarea.New()
	ta.Placeholder = "Paste or type your study notes here..."
	ta.SetValue(state.Notes())
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "path/to/notes.pdf"

	return &EditorScreen{
		state: state,
		text:  ta,
		path:  ti,
	}
}

func (e *EditorScreen) Init() tea.Cmd {
	return e.text.Focus()
}

func (e *EditorScreen) Title() string {
	return "Notes"
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	if e.focus == focusPath {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load file"},
			{Key: "Ctrl+O", Description: "Back to text"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Save notes"},
		{Key: "Ctrl+O", Description: "Load from file"},
		{Key: "Esc", Description: "Back"},
	}
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+s":
			e.state.SetNotes(notes.FromString(e.text.Value()))
			return e, func() tea.Msg { return router.PopScreenMsg{} }

		case "ctrl+o":
			if e.focus == focusText {
				e.focus = focusPath
				e.text.Blur()
				return e, e.path.Focus()
			}
			e.focus = focusText
			e.path.Blur()
			return e, e.text.Focus()

		case "enter":
			if e.focus == focusPath {
				e.loadFile(strings.TrimSpace(e.path.Value()))
				return e, nil
			}
		}
	}

	var cmd tea.Cmd
	if e.focus == focusPath {
		e.path, cmd = e.path.Update(msg)
	} else {
		e.text, cmd = e.text.Update(msg)
	}
	return e, cmd
}

func (e *EditorScreen) loadFile(path string) {
	if path == "" {
		e.status = "Enter a file path first"
		e.isErr = true
		return
	}
	extracted, err := notes.ExtractFile(path)
	if err != nil {
		e.status = fmt.Sprintf("Could not load file: %v", err)
		e.isErr = true
		return
	}
	if extracted == "" {
		e.status = "File contained no readable text"
		e.isErr = true
		return
	}
	e.text.SetValue(extracted)
	e.status = fmt.Sprintf("Loaded %d characters from %s", len(extracted), path)
	e.isErr = false
	e.focus = focusText
	e.path.Blur()
	e.text.Focus()
}

func (e *EditorScreen) View(width, height int) string {
	e.text.SetWidth(width - 4)
	e.text.SetHeight(height - 8)

	var b strings.Builder

	b.WriteString(theme.Body.Render("Your study notes:"))
	b.WriteString("\n\n")
	b.WriteString(e.text.View())
	b.WriteString("\n\n")

	if e.focus == focusPath {
		b.WriteString(components.Prompt("Load from file (PDF, PPTX or text):"))
		b.WriteString("\n")
		b.WriteString(e.path.View())
		b.WriteString("\n")
	}

	count := len(notes.FromString(e.text.Value()))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d characters", count)))

	if e.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if e.isErr {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("\n")
		b.WriteString(style.Render(e.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
