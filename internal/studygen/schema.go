package studygen

import "github.com/studyowl/studyowl/internal/llm"

// QuizSchema is the JSON schema for the quiz generation response. It pins
// the wrapper field and the 4-option rule, so providers with native
// structured output enforce the contract at generation time. The parser
// itself stays permissive.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A set of multiple-choice questions generated from study notes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"multiple_choice": map[string]any{
				"type":        "array",
				"description": "The generated multiple-choice questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 distinct options",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "Must exactly match one of the options",
						},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"multiple_choice"},
		"additionalProperties": false,
	},
}

// PracticeTestSchema is the JSON schema for the practice-test response.
// The answer field is left untyped because its type depends on the item
// type (string for multiple_choice/fill_blank, boolean for true_false).
var PracticeTestSchema = &llm.Schema{
	Name:        "practice-test",
	Description: "A mixed practice test generated from study notes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"practice_test": map[string]any{
				"type":        "array",
				"description": "The generated practice-test items",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "true_false", "fill_blank", "open_question"},
						},
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"answer": map[string]any{
							"description": "String for multiple_choice and fill_blank, boolean for true_false, absent for open_question",
						},
					},
					"required": []any{"type", "question"},
				},
			},
		},
		"required":             []any{"practice_test"},
		"additionalProperties": false,
	},
}
