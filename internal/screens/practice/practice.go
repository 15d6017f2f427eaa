// Package practice implements the mixed practice-test screen: multiple
// choice, true/false, fill-in-the-blank and open questions in one round.
package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyowl/studyowl/internal/router"
	"github.com/studyowl/studyowl/internal/screen"
	"github.com/studyowl/studyowl/internal/session"
	"github.com/studyowl/studyowl/internal/store"
	"github.com/studyowl/studyowl/internal/studygen"
	"github.com/studyowl/studyowl/internal/ui/components"
	"github.com/studyowl/studyowl/internal/ui/layout"
	"github.com/studyowl/studyowl/internal/ui/theme"
)

const generateTimeout = 90 * time.Second

type phase int

const (
	phaseNoNotes phase = iota
	phaseLoading
	phaseAnswering
	phaseResults
	phaseFailed
)

type testReadyMsg struct {
	items []studygen.PracticeItem
}

type testErrMsg struct {
	err error
}

type attemptSavedMsg struct{}

// itemWidget holds the input widget for one practice item. Exactly one of
// the fields is active, depending on the item type.
type itemWidget struct {
	choice components.ChoiceList // multiple_choice, true_false
	input  components.AnswerInput
	isText bool // fill_blank, open_question
}

// PracticeScreen runs one practice-test round.
type PracticeScreen struct {
	svc      *studygen.Service
	state    *session.State
	attempts store.AttemptRepo

	phase   phase
	err     error
	current int
	widgets []itemWidget
	report  studygen.ScoreReport
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the practice screen. An existing test in the session is
// resumed; otherwise a new one is generated on entry.
func New(svc *studygen.Service, state *session.State, attempts store.AttemptRepo) *PracticeScreen {
	p := &PracticeScreen{
		svc:      svc,
		state:    state,
		attempts: attempts,
	}

	switch {
	case !state.HasNotes():
		p.phase = phaseNoNotes
	case state.PracticeTest() != nil:
		p.phase = phaseAnswering
		p.buildWidgets(state.PracticeTest())
	default:
		p.phase = phaseLoading
	}
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	if p.phase == phaseLoading {
		return p.generate()
	}
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Practice Test"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next question"},
			{Key: "Enter", Description: "Lock answer"},
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseResults, phaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "New test"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
}

func (p *PracticeScreen) generate() tea.Cmd {
	notes := p.state.Notes()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		items, err := p.svc.GeneratePracticeTest(ctx, notes)
		if err != nil {
			return testErrMsg{err: err}
		}
		return testReadyMsg{items: items}
	}
}

func (p *PracticeScreen) buildWidgets(items []studygen.PracticeItem) {
	p.widgets = make([]itemWidget, len(items))
	for i, item := range items {
		switch item.Type {
		case studygen.ItemMultipleChoice:
			p.widgets[i] = itemWidget{choice: components.NewChoiceList(item.Options, true)}
		case studygen.ItemTrueFalse:
			p.widgets[i] = itemWidget{choice: components.NewChoiceList([]string{"True", "False"}, false)}
		default:
			// fill_blank, open_question and anything unrecognized get a
			// free-text box; unrecognized types are simply never graded.
			p.widgets[i] = itemWidget{input: components.NewAnswerInput("your answer"), isText: true}
		}
	}
	p.current = 0
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case testReadyMsg:
		p.state.InstallPracticeTest(msg.items)
		p.buildWidgets(msg.items)
		p.phase = phaseAnswering
		return p, nil

	case testErrMsg:
		p.err = msg.err
		p.phase = phaseFailed
		return p, nil

	case attemptSavedMsg:
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseAnswering && len(p.widgets) > 0 {
		return p, p.forwardToWidget(msg)
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseAnswering:
		switch key {
		case "tab":
			if p.current < len(p.widgets)-1 {
				p.current++
			}
			return p, nil
		case "shift+tab":
			if p.current > 0 {
				p.current--
			}
			return p, nil
		case "ctrl+s":
			return p.submit()
		}
		return p, p.forwardToWidget(msg)

	case phaseResults, phaseFailed:
		if key == "r" {
			return p, p.regenerate()
		}
	}
	return p, nil
}

// regenerate swaps in a fresh screen for the new round, so no report or
// widget state can leak over from the old one. The router runs the
// replacement's Init, which kicks off generation.
func (p *PracticeScreen) regenerate() tea.Cmd {
	next := New(p.svc, p.state, p.attempts)
	next.phase = phaseLoading
	next.widgets = nil
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (p *PracticeScreen) forwardToWidget(msg tea.Msg) tea.Cmd {
	if p.current >= len(p.widgets) {
		return nil
	}
	w := &p.widgets[p.current]
	var cmd tea.Cmd
	if w.isText {
		w.input, cmd = w.input.Update(msg)
		p.recordAnswer(p.current)
		return cmd
	}
	w.choice, cmd = w.choice.Update(msg)
	p.recordAnswer(p.current)
	return cmd
}

// recordAnswer mirrors the widget state into the session, converting to
// the answer representation grading expects.
func (p *PracticeScreen) recordAnswer(index int) {
	items := p.state.PracticeTest()
	if index >= len(items) {
		return
	}
	w := p.widgets[index]

	if w.isText {
		// Mirror the current field state, including a cleared field:
		// deleting a typed answer must not leave the old one recorded.
		v := strings.TrimSpace(w.input.Value())
		if v == "" {
			p.state.ClearPracticeAnswer(index)
			return
		}
		p.state.SetPracticeAnswer(index, studygen.TextAnswer(v))
		return
	}

	if !w.choice.HasChoice() {
		return
	}
	if items[index].Type == studygen.ItemTrueFalse {
		p.state.SetPracticeAnswer(index, studygen.BoolAnswer(w.choice.Chosen == 0))
		return
	}
	p.state.SetPracticeAnswer(index, studygen.TextAnswer(w.choice.Value()))
}

func (p *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	p.report = p.state.GradePracticeTest()
	p.phase = phaseResults

	if p.attempts == nil {
		return p, nil
	}
	attempt := store.Attempt{
		SessionID: p.state.ID,
		Kind:      "practice-test",
		Correct:   p.report.Correct,
		Total:     p.report.Total,
	}
	repo := p.attempts
	return p, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = repo.AppendAttempt(ctx, attempt)
		return attemptSavedMsg{}
	}
}

func (p *PracticeScreen) View(width, height int) string {
	switch p.phase {
	case phaseNoNotes:
		return centered(width, height, theme.Hint.Render("No notes loaded. Go back and use LOAD NOTES first."))
	case phaseLoading:
		return centered(width, height, theme.Body.Render("Building a practice test from your notes..."))
	case phaseFailed:
		return centered(width, height,
			theme.Incorrect.Render("Practice test generation failed")+"\n\n"+
				theme.Body.Render(fmt.Sprint(p.err))+"\n\n"+
				theme.Hint.Render("Press R to retry"))
	case phaseResults:
		return p.viewResults(width, height)
	default:
		return p.viewItem(width, height)
	}
}

func (p *PracticeScreen) viewItem(width, height int) string {
	items := p.state.PracticeTest()
	if len(items) == 0 {
		return centered(width, height, theme.Hint.Render("The practice test came back empty. Press R to retry."))
	}

	item := items[p.current]
	w := p.widgets[p.current]

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d — %s",
		p.current+1, len(items), itemLabel(item.Type))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width - 8).Render(item.Question))
	b.WriteString("\n\n")

	if w.isText {
		b.WriteString(w.input.View())
		if item.Type == studygen.ItemOpenQuestion {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Open question — answer for yourself, it is not scored"))
		}
	} else {
		b.WriteString(w.choice.View())
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Ctrl+S submits the whole test"))

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (p *PracticeScreen) viewResults(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width - 8).Render("Practice test results"))
	b.WriteString("\n\n")
	b.WriteString(components.NewScoreBar(p.report.Correct, p.report.Total, min(width-8, 50)).View())
	b.WriteString("\n\n")

	for _, v := range p.report.Verdicts {
		if !v.Graded {
			b.WriteString(fmt.Sprintf("%s %s\n",
				theme.Hint.Render("—"),
				theme.Hint.Render(v.Question+"  (not scored)")))
			continue
		}
		mark := theme.Incorrect.Render("✗")
		if v.Correct {
			mark = theme.Correct.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark,
			lipgloss.NewStyle().Foreground(theme.Text).Render(v.Question)))
		if !v.Correct {
			got := v.Received
			if got == "" {
				got = "(no answer)"
			}
			b.WriteString(theme.Hint.Render(fmt.Sprintf("   your answer: %s — correct: %s", got, v.Expected)))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func itemLabel(t studygen.ItemType) string {
	switch t {
	case studygen.ItemMultipleChoice:
		return "multiple choice"
	case studygen.ItemTrueFalse:
		return "true or false"
	case studygen.ItemFillBlank:
		return "fill in the blank"
	case studygen.ItemOpenQuestion:
		return "open question"
	default:
		return string(t)
	}
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
