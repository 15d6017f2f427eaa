package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyowl/studyowl/internal/studygen"
)

func TestNewHasID(t *testing.T) {
	a := New()
	b := New()
	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "session IDs must be unique")
}

func TestSlotsCoexist(t *testing.T) {
	s := New()
	s.SetNotes("notes")

	s.InstallQuiz([]studygen.MCQuestion{{Question: "q", Answer: "a"}})
	s.InstallPracticeTest([]studygen.PracticeItem{
		{Type: studygen.ItemFillBlank, Question: "fb", Answer: studygen.TextAnswer("x")},
	})
	s.SetExplanation("explained")
	s.SetSummary("summarized")

	assert.Len(t, s.Quiz(), 1)
	assert.Len(t, s.PracticeTest(), 1)
	assert.Equal(t, "explained", s.Explanation())
	assert.Equal(t, "summarized", s.Summary())
}

func TestInstallQuizClearsAnswers(t *testing.T) {
	s := New()
	s.InstallQuiz([]studygen.MCQuestion{{Question: "q", Answer: "a"}})
	s.SetQuizAnswer(0, "a")

	s.InstallQuiz([]studygen.MCQuestion{{Question: "q2", Answer: "b"}})

	_, ok := s.QuizAnswer(0)
	assert.False(t, ok, "installing a new quiz must clear previous answers")
}

func TestQuizAnswerOverwrite(t *testing.T) {
	s := New()
	s.InstallQuiz([]studygen.MCQuestion{
		{Question: "q", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
	})

	s.SetQuizAnswer(0, "a")
	s.SetQuizAnswer(0, "b")

	got, ok := s.QuizAnswer(0)
	require.True(t, ok)
	assert.Equal(t, "b", got)

	report := s.GradeQuiz()
	assert.Equal(t, 1, report.Correct)
	assert.Equal(t, 1, report.Total)
}

func TestGradePracticeTest(t *testing.T) {
	s := New()
	s.InstallPracticeTest([]studygen.PracticeItem{
		{Type: studygen.ItemTrueFalse, Question: "tf", Answer: studygen.BoolAnswer(true)},
		{Type: studygen.ItemOpenQuestion, Question: "open"},
	})
	s.SetPracticeAnswer(0, studygen.BoolAnswer(true))

	report := s.GradePracticeTest()
	assert.Equal(t, 1, report.Total, "open question must not count")
	assert.Equal(t, 1, report.Correct)
}

func TestGradeWithoutMaterial(t *testing.T) {
	s := New()
	assert.Zero(t, s.GradeQuiz().Total)
	assert.Zero(t, s.GradePracticeTest().Total)
}
