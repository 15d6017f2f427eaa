package studygen

import (
	"reflect"
	"testing"
)

func TestGradeQuiz(t *testing.T) {
	questions := []MCQuestion{
		{Question: "q0", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
		{Question: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
	}

	report := GradeQuiz(questions, map[int]string{
		0: "a", // correct
		1: "c", // wrong
		// 2 unanswered
	})

	if report.Total != 3 {
		t.Errorf("Total = %d, want 3", report.Total)
	}
	if report.Correct != 1 {
		t.Errorf("Correct = %d, want 1", report.Correct)
	}
	if !report.Verdicts[0].Correct || report.Verdicts[1].Correct || report.Verdicts[2].Correct {
		t.Errorf("verdicts = %+v", report.Verdicts)
	}
}

func TestGradeQuizCaseSensitive(t *testing.T) {
	questions := []MCQuestion{{Question: "q", Options: []string{"Paris", "x", "y", "z"}, Answer: "Paris"}}
	report := GradeQuiz(questions, map[int]string{0: "paris"})
	if report.Correct != 0 {
		t.Fatal("quiz grading must be exact, case-sensitive comparison")
	}
}

func TestGradeQuizIdempotent(t *testing.T) {
	questions := []MCQuestion{
		{Question: "q0", Answer: "a"},
		{Question: "q1", Answer: "b"},
	}
	answers := map[int]string{0: "a", 1: "x"}
	first := GradeQuiz(questions, answers)
	second := GradeQuiz(questions, answers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grading not idempotent: %+v vs %+v", first, second)
	}
}

func TestGradePracticeTest(t *testing.T) {
	items := []PracticeItem{
		{Type: ItemMultipleChoice, Question: "mc", Options: []string{"a", "b", "c", "d"}, Answer: TextAnswer("b")},
		{Type: ItemTrueFalse, Question: "tf", Answer: BoolAnswer(true)},
		{Type: ItemFillBlank, Question: "fb ____", Answer: TextAnswer("Paris")},
		{Type: ItemOpenQuestion, Question: "open"},
	}

	report := GradePracticeTest(items, map[int]Answer{
		0: TextAnswer("b"),
		1: BoolAnswer(true),
		2: TextAnswer("  paris  "), // trimmed, case-insensitive
		3: TextAnswer("long essay"),
	})

	if report.Total != 3 {
		t.Errorf("Total = %d, want 3 (open question excluded)", report.Total)
	}
	if report.Correct != 3 {
		t.Errorf("Correct = %d, want 3", report.Correct)
	}
	if report.Verdicts[3].Graded {
		t.Error("open question must not be graded")
	}
}

func TestGradePracticeTestBoolStrict(t *testing.T) {
	items := []PracticeItem{{Type: ItemTrueFalse, Question: "tf", Answer: BoolAnswer(true)}}

	// A text reply never matches a boolean canonical answer.
	report := GradePracticeTest(items, map[int]Answer{0: TextAnswer("true")})
	if report.Correct != 0 {
		t.Error("text answer must not match boolean canonical answer")
	}
	if report.Total != 1 {
		t.Errorf("Total = %d, want 1", report.Total)
	}

	report = GradePracticeTest(items, map[int]Answer{0: BoolAnswer(false)})
	if report.Correct != 0 {
		t.Error("false must not match true")
	}
}

func TestGradePracticeTestTextPathForStringBool(t *testing.T) {
	// Canonical answer arrived as the string "true"; the comparison follows
	// the answer's kind, so "TRUE" from the user matches case-insensitively.
	items := []PracticeItem{{Type: ItemTrueFalse, Question: "tf", Answer: TextAnswer("true")}}
	report := GradePracticeTest(items, map[int]Answer{0: TextAnswer("TRUE")})
	if report.Correct != 1 {
		t.Fatal("string canonical answer should take the text comparison path")
	}
}

func TestGradePracticeTestUnanswered(t *testing.T) {
	items := []PracticeItem{
		{Type: ItemFillBlank, Question: "fb", Answer: TextAnswer("x")},
		{Type: ItemTrueFalse, Question: "tf", Answer: BoolAnswer(false)},
	}
	report := GradePracticeTest(items, nil)
	if report.Total != 2 || report.Correct != 0 {
		t.Fatalf("unanswered items count as wrong: %+v", report)
	}
}

func TestGradePracticeTestUnknownTypeSkipped(t *testing.T) {
	items := []PracticeItem{
		{Type: ItemType("matching"), Question: "m", Answer: TextAnswer("a")},
		{Type: ItemFillBlank, Question: "fb", Answer: TextAnswer("a")},
	}
	report := GradePracticeTest(items, map[int]Answer{0: TextAnswer("a"), 1: TextAnswer("a")})
	if report.Total != 1 {
		t.Errorf("Total = %d, want 1 (unknown type excluded)", report.Total)
	}
	if report.Verdicts[0].Graded {
		t.Error("unknown item type must not be graded")
	}
}

func TestGradePracticeTestMissingCanonicalAnswer(t *testing.T) {
	items := []PracticeItem{{Type: ItemFillBlank, Question: "fb"}}
	report := GradePracticeTest(items, map[int]Answer{0: TextAnswer("anything")})
	if report.Total != 1 || report.Correct != 0 {
		t.Fatalf("gradable item with no canonical answer counts and is wrong: %+v", report)
	}
}
