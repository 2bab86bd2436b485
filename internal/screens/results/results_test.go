package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/snapstudy/internal/practice"
	"github.com/abhisek/snapstudy/internal/question"
)

func mcQuestion(id int64, tag, prompt, correct string) question.SavedQuestion {
	return question.SavedQuestion{
		ID:        id,
		RawText:   prompt,
		Tag:       tag,
		CreatedAt: time.Now(),
		Kind:      question.KindMultipleChoice,
		Parsed: &question.ParsedQuestion{
			Prompt: prompt,
			Options: []question.Option{
				{Letter: "A", Text: "first"},
				{Letter: "B", Text: "second"},
			},
			Source: question.SourceAutomatic,
		},
		CorrectAnswer: correct,
	}
}

func finishedSession() *practice.Session {
	bank := []question.SavedQuestion{
		mcQuestion(1, "algebra", "What is the slope here?", "A"),
		mcQuestion(2, "geometry", "How many sides has a hexagon?", "B"),
	}
	s, _ := practice.Build(bank, map[string]bool{"algebra": true, "geometry": true}, practice.Count{All: true}, nil)
	for range s.Questions {
		s.Select("A")
		s.Submit()
		s.Advance(1)
	}
	return s
}

func TestResultsScreen_Title(t *testing.T) {
	r := New(finishedSession())
	if r.Title() != "Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	r := New(finishedSession())
	view := r.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty results view")
	}
	if !strings.Contains(view, "50%") {
		t.Errorf("expected score percentage in view")
	}
}

func TestResultsScreen_EnterPopsToRoot(t *testing.T) {
	r := New(finishedSession())
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (home)")
	}
}
