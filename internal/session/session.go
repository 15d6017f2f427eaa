// Package session holds the state of one study session: the notes text
// and the material generated from it. Quiz, practice test, explanation
// and summary occupy independent slots, so generating one never clobbers
// another.
package session

import (
	"github.com/google/uuid"

	"github.com/studyowl/studyowl/internal/studygen"
)

// State is the mutable session state. It is owned by the UI event loop
// and not safe for concurrent mutation.
type State struct {
	// ID labels the session in persisted attempt records.
	ID string

	notes string

	quiz        []studygen.MCQuestion
	quizAnswers map[int]string

	practice        []studygen.PracticeItem
	practiceAnswers map[int]studygen.Answer

	explanation string
	summary     string
}

// New creates an empty session with a fresh identifier.
func New() *State {
	return &State{ID: uuid.NewString()}
}

// SetNotes replaces the session's notes text.
func (s *State) SetNotes(notes string) { s.notes = notes }

// Notes returns the current notes text.
func (s *State) Notes() string { return s.notes }

// HasNotes reports whether any notes are loaded.
func (s *State) HasNotes() bool { return s.notes != "" }

// InstallQuiz replaces the quiz slot with a freshly generated question
// set and clears previous quiz answers. Installation is all or nothing:
// callers only reach this with a fully parsed set, a failed generation
// leaves the previous quiz intact.
func (s *State) InstallQuiz(questions []studygen.MCQuestion) {
	s.quiz = questions
	s.quizAnswers = make(map[int]string)
}

// Quiz returns the current quiz, nil when none is installed.
func (s *State) Quiz() []studygen.MCQuestion { return s.quiz }

// SetQuizAnswer records the user's selection for one quiz question.
// Answering again overwrites the previous selection.
func (s *State) SetQuizAnswer(index int, option string) {
	if s.quizAnswers == nil {
		s.quizAnswers = make(map[int]string)
	}
	s.quizAnswers[index] = option
}

// QuizAnswer returns the recorded selection for a question.
func (s *State) QuizAnswer(index int) (string, bool) {
	v, ok := s.quizAnswers[index]
	return v, ok
}

// GradeQuiz scores the installed quiz against the recorded answers.
func (s *State) GradeQuiz() studygen.ScoreReport {
	return studygen.GradeQuiz(s.quiz, s.quizAnswers)
}

// InstallPracticeTest replaces the practice-test slot and clears previous
// practice answers. The quiz slot is untouched.
func (s *State) InstallPracticeTest(items []studygen.PracticeItem) {
	s.practice = items
	s.practiceAnswers = make(map[int]studygen.Answer)
}

// PracticeTest returns the current practice test, nil when none is
// installed.
func (s *State) PracticeTest() []studygen.PracticeItem { return s.practice }

// SetPracticeAnswer records the user's answer for one practice item.
func (s *State) SetPracticeAnswer(index int, answer studygen.Answer) {
	if s.practiceAnswers == nil {
		s.practiceAnswers = make(map[int]studygen.Answer)
	}
	s.practiceAnswers[index] = answer
}

// ClearPracticeAnswer removes the recorded answer for an item, returning
// it to the unanswered state. Unanswered gradable items score wrong.
func (s *State) ClearPracticeAnswer(index int) {
	delete(s.practiceAnswers, index)
}

// PracticeAnswer returns the recorded answer for an item.
func (s *State) PracticeAnswer(index int) (studygen.Answer, bool) {
	v, ok := s.practiceAnswers[index]
	return v, ok
}

// GradePracticeTest scores the installed practice test against the
// recorded answers.
func (s *State) GradePracticeTest() studygen.ScoreReport {
	return studygen.GradePracticeTest(s.practice, s.practiceAnswers)
}

// SetExplanation stores a Feynman explanation.
func (s *State) SetExplanation(text string) { s.explanation = text }

// Explanation returns the stored explanation, "" when none exists.
func (s *State) Explanation() string { return s.explanation }

// SetSummary stores a summary.
func (s *State) SetSummary(text string) { s.summary = text }

// Summary returns the stored summary, "" when none exists.
func (s *State) Summary() string { return s.summary }
