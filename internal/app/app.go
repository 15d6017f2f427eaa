package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/router"
	"github.com/studyowl/studyowl/internal/screen"
	"github.com/studyowl/studyowl/internal/screens/home"
	"github.com/studyowl/studyowl/internal/session"
	"github.com/studyowl/studyowl/internal/store"
	"github.com/studyowl/studyowl/internal/studygen"
	"github.com/studyowl/studyowl/internal/ui/layout"
)

// Options carries the wired services the TUI needs. Service may be nil,
// in which case the AI-backed menu entries render disabled.
type Options struct {
	Service  *studygen.Service
	State    *session.State
	Attempts store.AttemptRepo

	// ModelID is shown in the header.
	ModelID string
}

// AppModel is the root Bubble Tea model: it owns the terminal frame and
// delegates the body to whichever screen the router has on top.
type AppModel struct {
	router  *router.Router
	modelID string
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router:  router.New(home.New(opts.Service, opts.State, opts.Attempts)),
		modelID: opts.ModelID,
	}
}

func (m AppModel) Init() tea.Cmd { return nil }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc always navigates back; the home screen ignores it.
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.modelID, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body := m.router.View(m.width, bodyHeight)

	v.SetContent(layout.RenderFrame(header, body, footer, m.width, m.height))
	return v
}

// footerHints lets the active screen override the footer; otherwise the
// defaults depend on whether there is anywhere to go back to.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	_, err := tea.NewProgram(newAppModel(opts)).Run()
	return err
}
