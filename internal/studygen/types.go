package studygen

import (
	"encoding/json"
	"strconv"
)

// MCQuestion is one multiple-choice quiz question.
// The generation contract asks for exactly 4 distinct options with the answer
// present verbatim among them; parsed questions are passed through as-is.
type MCQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ItemType tags the shape of a practice-test item.
type ItemType string

const (
	ItemMultipleChoice ItemType = "multiple_choice"
	ItemTrueFalse      ItemType = "true_false"
	ItemFillBlank      ItemType = "fill_blank"
	ItemOpenQuestion   ItemType = "open_question"
)

// AnswerKind tags the representation of an answer value.
type AnswerKind int

const (
	// AnswerNone means no answer was given (or none exists, for open questions).
	AnswerNone AnswerKind = iota
	AnswerText
	AnswerBool
)

// Answer is a tagged answer value: free text, a boolean, or nothing.
// It models both the canonical answer carried by a practice item and the
// value the user submits, so the grading policy can dispatch on the
// canonical answer's kind.
type Answer struct {
	Kind AnswerKind
	Text string
	Bool bool
}

// TextAnswer returns a text-valued Answer.
func TextAnswer(s string) Answer {
	return Answer{Kind: AnswerText, Text: s}
}

// BoolAnswer returns a boolean-valued Answer.
func BoolAnswer(b bool) Answer {
	return Answer{Kind: AnswerBool, Bool: b}
}

// String returns the display form: the text, "true"/"false", or "".
func (a Answer) String() string {
	switch a.Kind {
	case AnswerText:
		return a.Text
	case AnswerBool:
		return strconv.FormatBool(a.Bool)
	default:
		return ""
	}
}

// UnmarshalJSON decodes a boolean as AnswerBool and anything stringy as
// AnswerText. JSON null yields AnswerNone.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = BoolAnswer(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = TextAnswer(s)
		return nil
	}
	if string(data) == "null" {
		*a = Answer{}
		return nil
	}
	return &MalformedResponseError{Reason: "answer is neither string nor boolean"}
}

// MarshalJSON emits the underlying value; AnswerNone marshals as null.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerText:
		return json.Marshal(a.Text)
	case AnswerBool:
		return json.Marshal(a.Bool)
	default:
		return []byte("null"), nil
	}
}

// PracticeItem is one practice-test question, a tagged union over the four
// item shapes. Items with an unknown type tag are carried through unparsed
// in shape but are never rendered as gradable and never scored.
type PracticeItem struct {
	Type     ItemType
	Question string
	Options  []string // multiple_choice only
	Answer   Answer   // absent for open_question
}

// practiceItemJSON is the wire shape of a practice-test item.
type practiceItemJSON struct {
	Type     ItemType `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   *Answer  `json:"answer,omitempty"`
}

func (p *PracticeItem) UnmarshalJSON(data []byte) error {
	var raw practiceItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Type = raw.Type
	p.Question = raw.Question
	p.Options = raw.Options
	if raw.Answer != nil {
		p.Answer = *raw.Answer
	} else {
		p.Answer = Answer{}
	}
	return nil
}

func (p PracticeItem) MarshalJSON() ([]byte, error) {
	raw := practiceItemJSON{
		Type:     p.Type,
		Question: p.Question,
		Options:  p.Options,
	}
	if p.Answer.Kind != AnswerNone {
		raw.Answer = &p.Answer
	}
	return json.Marshal(raw)
}
