// Package reader implements the scrollable prose screen used for Feynman
// explanations and summaries.
package reader

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/screen"
	"github.com/studyowl/studyowl/internal/session"
	"github.com/studyowl/studyowl/internal/studygen"
	"github.com/studyowl/studyowl/internal/ui/layout"
	"github.com/studyowl/studyowl/internal/ui/theme"
)

const generateTimeout = 90 * time.Second

// Mode selects which prose the reader generates and shows.
type Mode int

const (
	ModeFeynman Mode = iota
	ModeSummary
)

type phase int

const (
	phaseNoNotes phase = iota
	phaseLoading
	phaseReading
	phaseFailed
)

type proseReadyMsg struct {
	text string
}

type proseErrMsg struct {
	err error
}

// ReaderScreen shows generated prose with simple scrolling.
type ReaderScreen struct {
	svc   *studygen.Service
	state *session.State
	mode  Mode

	phase  phase
	err    error
	text   string
	offset int
}

var _ screen.Screen = (*ReaderScreen)(nil)
var _ screen.KeyHintProvider = (*ReaderScreen)(nil)

// New creates the reader. A previously generated text for this mode is
// shown immediately; otherwise generation starts on entry.
func New(svc *studygen.Service, state *session.State, mode Mode) *ReaderScreen {
	r := &ReaderScreen{
		svc:   svc,
		state: state,
		mode:  mode,
	}

	cached := r.cached()
	switch {
	case !state.HasNotes():
		r.phase = phaseNoNotes
	case cached != "":
		r.phase = phaseReading
		r.text = cached
	default:
		r.phase = phaseLoading
	}
	return r
}

func (r *ReaderScreen) cached() string {
	if r.mode == ModeSummary {
		return r.state.Summary()
	}
	return r.state.Explanation()
}

func (r *ReaderScreen) Init() tea.Cmd {
	if r.phase == phaseLoading {
		return r.generate()
	}
	return nil
}

func (r *ReaderScreen) Title() string {
	if r.mode == ModeSummary {
		return "Summary"
	}
	return "Explanation"
}

func (r *ReaderScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Regenerate"},
		{Key: "Esc", Description: "Back"},
	}
	if r.phase != phaseReading {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return hints
}

func (r *ReaderScreen) generate() tea.Cmd {
	notes := r.state.Notes()
	mode := r.mode
	svc := r.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		var text string
		var err error
		if mode == ModeSummary {
			text, err = svc.Summarize(ctx, notes)
		} else {
			text, err = svc.Explain(ctx, notes)
		}
		if err != nil {
			return proseErrMsg{err: err}
		}
		return proseReadyMsg{text: strings.TrimSpace(text)}
	}
}

func (r *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case proseReadyMsg:
		r.text = msg.text
		if r.mode == ModeSummary {
			r.state.SetSummary(msg.text)
		} else {
			r.state.SetExplanation(msg.text)
		}
		r.offset = 0
		r.phase = phaseReading
		return r, nil

	case proseErrMsg:
		r.err = msg.err
		r.phase = phaseFailed
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if r.offset > 0 {
				r.offset--
			}
		case "down", "j":
			r.offset++
		case "r":
			if r.phase == phaseReading || r.phase == phaseFailed {
				r.phase = phaseLoading
				r.err = nil
				return r, r.generate()
			}
		}
	}
	return r, nil
}

func (r *ReaderScreen) View(width, height int) string {
	switch r.phase {
	case phaseNoNotes:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No notes loaded. Go back and use LOAD NOTES first."))
	case phaseLoading:
		label := "Explaining your notes in simple terms..."
		if r.mode == ModeSummary {
			label = "Summarizing your notes..."
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Body.Render(label))
	case phaseFailed:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Generation failed")+"\n\n"+
				theme.Body.Render(fmt.Sprint(r.err))+"\n\n"+
				theme.Hint.Render("Press R to retry"))
	}

	wrapped := lipgloss.NewStyle().Width(width - 6).Render(r.text)
	lines := strings.Split(wrapped, "\n")

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.offset > maxOffset {
		r.offset = maxOffset
	}

	end := r.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	window := strings.Join(lines[r.offset:end], "\n")

	body := theme.Body.Render(window)
	if maxOffset > 0 {
		body += "\n" + theme.Hint.Render(fmt.Sprintf("(%d/%d)", r.offset+visible, len(lines)))
	}
	return lipgloss.NewStyle().Padding(1, 3).Render(body)
}
