package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/router"
	"github.com/studyowl/studyowl/internal/screen"
	"github.com/studyowl/studyowl/internal/screens/editor"
	"github.com/studyowl/studyowl/internal/screens/history"
	"github.com/studyowl/studyowl/internal/screens/practice"
	"github.com/studyowl/studyowl/internal/screens/quiz"
	"github.com/studyowl/studyowl/internal/screens/reader"
	"github.com/studyowl/studyowl/internal/session"
	"github.com/studyowl/studyowl/internal/store"
	"github.com/studyowl/studyowl/internal/studygen"
	"github.com/studyowl/studyowl/internal/ui/components"
	"github.com/studyowl/studyowl/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	state    *session.State
	attempts store.AttemptRepo
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(svc *studygen.Service, state *session.State, attempts store.AttemptRepo) *HomeScreen {
	push := func(s screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}
	pushFn := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	// AI entries stay visible but disabled when no provider is configured.
	noAI := svc == nil

	items := []components.MenuItem{
		{Label: "LOAD NOTES", Action: push(editor.New(state))},
		{Label: "QUIZ ME", Disabled: noAI, Action: pushFn(func() screen.Screen {
			return quiz.New(svc, state, attempts)
		})},
		{Label: "PRACTICE TEST", Disabled: noAI, Action: pushFn(func() screen.Screen {
			return practice.New(svc, state, attempts)
		})},
		{Label: "EXPLAIN SIMPLY", Disabled: noAI, Action: pushFn(func() screen.Screen {
			return reader.New(svc, state, reader.ModeFeynman)
		})},
		{Label: "SUMMARIZE", Disabled: noAI, Action: pushFn(func() screen.Screen {
			return reader.New(svc, state, reader.ModeSummary)
		})},
		{Label: "HISTORY", Action: pushFn(func() screen.Screen {
			return history.New(attempts)
		})},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		state:    state,
		attempts: attempts,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("StudyOwl"))
	sections = append(sections, theme.Subtitle.Width(width).Render("Turn your notes into quizzes, tests and explanations"))

	status := "No notes loaded yet — start with LOAD NOTES"
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if h.state.HasNotes() {
		status = fmt.Sprintf("Notes loaded: %d characters", len(h.state.Notes()))
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(status)))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
