package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studyowl/studyowl/internal/router"
	"github.com/studyowl/studyowl/internal/session"
	"github.com/studyowl/studyowl/internal/studygen"
)

func TestRetrySwapsInFreshScreen(t *testing.T) {
	state := session.New()
	state.SetNotes("some notes")
	state.InstallQuiz([]studygen.MCQuestion{
		{Question: "q", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
	})
	q := New(nil, state, nil)
	q.phase = phaseResults

	_, cmd := q.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command from retry")
	}
	out := cmd()
	rep, ok := out.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", out)
	}
	next, ok := rep.Screen.(*QuizScreen)
	if !ok {
		t.Fatalf("replacement screen is %T", rep.Screen)
	}
	if next.phase != phaseLoading {
		t.Fatalf("replacement phase = %d, want loading", next.phase)
	}
	if len(next.choices) != 0 {
		t.Fatal("replacement must not carry old choice widgets")
	}
}
