package studygen

import "strings"

// Verdict records the grading outcome for a single question.
type Verdict struct {
	Index    int
	Question string
	// Graded is false for items excluded from scoring (open questions,
	// unknown item types).
	Graded   bool
	Correct  bool
	Expected string
	Received string
}

// ScoreReport is the result of grading one question set. Total counts only
// graded items, so open questions never dilute the score.
type ScoreReport struct {
	Verdicts []Verdict
	Correct  int
	Total    int
}

// GradeQuiz scores a quiz against the user's selections, keyed by question
// index. Comparison is exact string equality against the canonical answer.
// An unanswered question counts as wrong. Grading is pure: calling it twice
// with the same inputs yields the same report.
func GradeQuiz(questions []MCQuestion, answers map[int]string) ScoreReport {
	report := ScoreReport{Verdicts: make([]Verdict, 0, len(questions))}
	for i, q := range questions {
		got, ok := answers[i]
		v := Verdict{
			Index:    i,
			Question: q.Question,
			Graded:   true,
			Expected: q.Answer,
		}
		if ok {
			v.Received = got
			v.Correct = got == q.Answer
		}
		if v.Correct {
			report.Correct++
		}
		report.Total++
		report.Verdicts = append(report.Verdicts, v)
	}
	return report
}

// GradePracticeTest scores a practice test against the user's answers,
// keyed by item index. The policy dispatches on the canonical answer's
// kind, not the item's declared type:
//
//   - text answers compare trimmed and case-insensitively, against the
//     display form of whatever the user submitted
//   - boolean answers require a boolean reply matching exactly
//   - open questions are skipped entirely and excluded from the total
//
// A true_false item whose canonical answer arrived as the string "true"
// therefore takes the text path, which mirrors how such responses behave
// in practice.
func GradePracticeTest(items []PracticeItem, answers map[int]Answer) ScoreReport {
	report := ScoreReport{Verdicts: make([]Verdict, 0, len(items))}
	for i, item := range items {
		v := Verdict{Index: i, Question: item.Question}
		if item.Type == ItemOpenQuestion {
			report.Verdicts = append(report.Verdicts, v)
			continue
		}
		switch item.Type {
		case ItemMultipleChoice, ItemTrueFalse, ItemFillBlank:
		default:
			// Unknown item type: never rendered as gradable, never scored.
			report.Verdicts = append(report.Verdicts, v)
			continue
		}

		v.Graded = true
		v.Expected = item.Answer.String()
		got, answered := answers[i]
		if answered {
			v.Received = got.String()
		}

		switch item.Answer.Kind {
		case AnswerText:
			if answered {
				v.Correct = strings.EqualFold(
					strings.TrimSpace(got.String()),
					strings.TrimSpace(item.Answer.Text),
				)
			}
		case AnswerBool:
			if answered && got.Kind == AnswerBool {
				v.Correct = got.Bool == item.Answer.Bool
			}
		default:
			// Canonical answer missing on a gradable item: nothing can
			// match it, so the item counts and is wrong.
		}

		if v.Correct {
			report.Correct++
		}
		report.Total++
		report.Verdicts = append(report.Verdicts, v)
	}
	return report
}
