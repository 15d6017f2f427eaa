// Package quiz implements the multiple-choice quiz screen: generation,
// answering and the score report.
package quiz

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

type quizReadyMsg struct {
	questions []studygen.MCQuestion
}

type quizErrMsg struct {
	err error
}

type attemptSavedMsg struct{}

// QuizScreen runs one quiz round.
type QuizScreen struct {
	svc      *studygen.Service
	state    *session.State
	attempts store.AttemptRepo

	phase   phase
	err     error
	current int
	choices []components.ChoiceList
	report  studygen.ScoreReport
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. An existing quiz in the session is resumed;
// otherwise a new one is generated on entry.
func New(svc *studygen.Service, state *session.State, attempts store.AttemptRepo) *QuizScreen {
	q := &QuizScreen{
		svc:      svc,
		state:    state,
		attempts: attempts,
	}

	switch {
	case !state.HasNotes():
		q.phase = phaseNoNotes
	case state.Quiz() != nil:
		q.phase = phaseAnswering
		q.buildChoices(state.Quiz())
	default:
		q.phase = phaseLoading
	}
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.phase == phaseLoading {
		return q.generate()
	}
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Lock answer"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseResults, phaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "New quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
}

func (q *QuizScreen) generate() tea.Cmd {
	notes := q.state.Notes()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		questions, err := q.svc.GenerateQuiz(ctx, notes)
		if err != nil {
			return quizErrMsg{err: err}
		}
		return quizReadyMsg{questions: questions}
	}
}

func (q *QuizScreen) buildChoices(questions []studygen.MCQuestion) {
	q.choices = make([]components.ChoiceList, len(questions))
	for i, question := range questions {
		q.choices[i] = components.NewChoiceList(question.Options, true)
	}
	q.current = 0
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		q.state.InstallQuiz(msg.questions)
		q.buildChoices(msg.questions)
		q.phase = phaseAnswering
		return q, nil

	case quizErrMsg:
		q.err = msg.err
		q.phase = phaseFailed
		return q, nil

	case attemptSavedMsg:
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch q.phase {
	case phaseAnswering:
		switch key {
		case "left", "h":
			if q.current > 0 {
				q.current--
			}
			return q, nil
		case "right", "l":
			if q.current < len(q.choices)-1 {
				q.current++
			}
			return q, nil
		case "s":
			return q.submit()
		}

		if q.current >= len(q.choices) {
			return q, nil
		}
		var cmd tea.Cmd
		q.choices[q.current], cmd = q.choices[q.current].Update(msg)
		if q.choices[q.current].HasChoice() {
			q.state.SetQuizAnswer(q.current, q.choices[q.current].Value())
		}
		return q, cmd

	case phaseResults, phaseFailed:
		if key == "r" {
			return q, q.regenerate()
		}
	}
	return q, nil
}

// regenerate swaps in a fresh screen for the new round, so no report or
// locked-in choices can leak over from the old one. The router runs the
// replacement's Init, which kicks off generation.
func (q *QuizScreen) regenerate() tea.Cmd {
	next := New(q.svc, q.state, q.attempts)
	next.phase = phaseLoading
	next.choices = nil
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q.report = q.state.GradeQuiz()
	q.phase = phaseResults

	if q.attempts == nil {
		return q, nil
	}
	attempt := store.Attempt{
		SessionID: q.state.ID,
		Kind:      "quiz",
		Correct:   q.report.Correct,
		Total:     q.report.Total,
	}
	repo := q.attempts
	return q, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = repo.AppendAttempt(ctx, attempt)
		return attemptSavedMsg{}
	}
}

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseNoNotes:
		return centered(width, height, theme.Hint.Render("No notes loaded. Go back and use LOAD NOTES first."))
	case phaseLoading:
		return centered(width, height, theme.Body.Render("Generating quiz from your notes..."))
	case phaseFailed:
		return centered(width, height,
			theme.Incorrect.Render("Quiz generation failed")+"\n\n"+
				theme.Body.Render(fmt.Sprint(q.err))+"\n\n"+
				theme.Hint.Render("Press R to retry"))
	case phaseResults:
		return q.viewResults(width, height)
	default:
		return q.viewQuestion(width, height)
	}
}

func (q *QuizScreen) viewQuestion(width, height int) string {
	questions := q.state.Quiz()
	if len(questions) == 0 {
		return centered(width, height, theme.Hint.Render("The quiz came back empty. Press R to retry."))
	}

	question := questions[q.current]

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", q.current+1, len(questions))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width - 8).Render(question.Question))
	b.WriteString("\n\n")
	b.WriteString(q.choices[q.current].View())

	answered := 0
	for i := range questions {
		if _, ok := q.state.QuizAnswer(i); ok {
			answered++
		}
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d/%d answered — press S to submit", answered, len(questions))))

	return lipgloss.NewStyle().Padding(1, 3).Render(b.String())
}

func (q *QuizScreen) viewResults(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width - 8).Render("Quiz results"))
	b.WriteString("\n\n")
	b.WriteString(components.NewScoreBar(q.report.Correct, q.report.Total, min(width-8, 50)).View())
	b.WriteString("\n\n")

	for _, v := range q.report.Verdicts {
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

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
