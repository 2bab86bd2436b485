package question

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func testParsed() *ParsedQuestion {
	return &ParsedQuestion{
		Prompt: "What is 2+2?",
		Options: []Option{
			{Letter: "A", Text: "3"},
			{Letter: "B", Text: "4"},
		},
		Source: SourceAutomatic,
	}
}

func TestDraftBuild_MultipleChoice(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	d := Draft{
		RawText:       "What is 2+2?\nA) 3\nB) 4",
		Tag:           "math",
		Explanation:   "Two plus two is **four**.",
		Parsed:        testParsed(),
		CorrectAnswer: "B",
	}

	q, err := d.Build(now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if q.ID != now.UnixMilli() {
		t.Errorf("ID = %d, want %d", q.ID, now.UnixMilli())
	}
	if q.Kind != KindMultipleChoice {
		t.Errorf("Kind = %q, want %q", q.Kind, KindMultipleChoice)
	}
	if !q.Practicable() {
		t.Error("expected question to be practicable")
	}
}

func TestDraftBuild_TextFallback(t *testing.T) {
	d := Draft{
		RawText: "Explain photosynthesis in your own words.",
		Tag:     "biology",
	}

	q, err := d.Build(time.Now())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if q.Kind != KindText {
		t.Errorf("Kind = %q, want %q", q.Kind, KindText)
	}
	if q.Practicable() {
		t.Error("text question must not be practicable")
	}
}

func TestDraftBuild_Validation(t *testing.T) {
	cases := []struct {
		name string
		d    Draft
		want error
	}{
		{"missing text", Draft{Tag: "math"}, ErrMissingText},
		{"missing tag", Draft{RawText: "some text"}, ErrMissingTag},
		{
			"missing answer",
			Draft{RawText: "raw", Tag: "math", Parsed: testParsed()},
			ErrMissingAnswer,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.d.Build(time.Now()); !errors.Is(err, tc.want) {
				t.Errorf("Build error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDraftBuild_UnknownAnswerLetter(t *testing.T) {
	d := Draft{
		RawText:       "raw",
		Tag:           "math",
		Parsed:        testParsed(),
		CorrectAnswer: "E",
	}

	_, err := d.Build(time.Now())
	var unknown *ErrUnknownAnswer
	if !errors.As(err, &unknown) {
		t.Fatalf("Build error = %v, want ErrUnknownAnswer", err)
	}
	if unknown.Letter != "E" {
		t.Errorf("Letter = %q, want E", unknown.Letter)
	}
}

func TestSavedQuestion_JSONShape(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	q, err := Draft{
		RawText:       "What is 2+2?\nA) 3\nB) 4",
		Tag:           "math",
		Parsed:        testParsed(),
		CorrectAnswer: "B",
	}.Build(now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// id must be numeric and correctAnswer a bare letter.
	if _, ok := m["id"].(float64); !ok {
		t.Errorf("id = %T, want a JSON number", m["id"])
	}
	if m["correctAnswer"] != "B" {
		t.Errorf("correctAnswer = %v, want %q", m["correctAnswer"], "B")
	}
	// An absent explanation stays absent, not empty.
	if _, ok := m["explanation"]; ok {
		t.Error("explanation should be omitted when empty")
	}
}
