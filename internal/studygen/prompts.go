package studygen

// The four fixed instruction templates. The JSON contracts here are load
// bearing: the quiz and practice-test parsers expect exactly the wrapper
// fields these templates describe.

const quizPrompt = `You are an expert teacher creating practice tests.
I will provide you with a set of notes on a topic.
Based on these notes, generate ONLY multiple-choice questions in valid JSON format.
Do not include explanations or extra text.

The JSON must look like this:

{
  "multiple_choice": [
    {
      "question": "string",
      "options": [
        "Option A text",
        "Option B text",
        "Option C text",
        "Option D text"
      ],
      "answer": "Option X text"
    }
  ]
}

Rules:
- Every question must have exactly 4 distinct options.
- The answer must exactly match one of the 4 options. Do not include ` + "```json" + ` fences or any explanation.`

const feynmanPrompt = `You are an expert teacher using the Feynman technique.
I will provide you with a set of notes.
Explain the concepts in the simplest possible way, as if teaching a 12-year-old.
Use analogies, simple words, and short sentences.
Do not output JSON, just plain text. Do not include ` + "```json" + ` fences or any explanation.`

const practiceTestPrompt = `You are an expert teacher creating practice tests.
I will provide you with a set of notes.
Return ONLY valid JSON. No markdown, no extra text.

The JSON must look like this:

{
  "practice_test": [
    {
      "type": "multiple_choice",
      "question": "string",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "answer": "Option X"
    },
    {
      "type": "true_false",
      "question": "string",
      "answer": true
    },
    {
      "type": "fill_blank",
      "question": "The capital of France is ____.",
      "answer": "Paris"
    },
    {
      "type": "open_question",
      "question": "Explain the causes of World War II."
    }
  ]
}

Rules:
- Multiple-choice must always have 4 options.
- True/False answers must be strictly true or false (boolean).
- Fill-in-the-blank must use '____' for the blank space.
- Open questions have no answer field.
- Do not include ` + "```json" + ` fences or any explanation.`

const summaryPrompt = `You are an expert teacher.
I will provide you with a set of notes.
Generate a clear and concise summary of the notes in plain text.
Rules:
- Keep the summary short (1-3 paragraphs).
- Use simple, clear sentences.
- Do not include lists unless necessary.`
