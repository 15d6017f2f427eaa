package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func quizTestSchema() *Schema {
	return &Schema{
		Name:        "quiz-test",
		Description: "Quiz document",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"multiple_choice": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 4,
								"maxItems": 4,
							},
							"answer": map[string]any{"type": "string"},
						},
						"required": []any{"question", "options", "answer"},
					},
				},
			},
			"required": []any{"multiple_choice"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"multiple_choice":[{"question":"q","options":["a","b","c","d"],"answer":"a"}]}`)
	if err := validateResponse(quizTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"multiple_choice":[{"question":"q","options":["a","b","c","d"]}]}`)
	err := validateResponse(quizTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongOptionCount(t *testing.T) {
	raw := json.RawMessage(`{"multiple_choice":[{"question":"q","options":["a","b"],"answer":"a"}]}`)
	err := validateResponse(quizTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for option count outside 4")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(quizTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`whatever prose the model produced`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SchemaCacheReuse(t *testing.T) {
	schema := quizTestSchema()
	raw := json.RawMessage(`{"multiple_choice":[]}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(schema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
}
