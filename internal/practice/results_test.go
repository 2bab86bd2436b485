package practice

import (
	"testing"

	"github.com/abhisek/snapstudy/internal/question"
)

func TestAggregate_ThreeOfFive(t *testing.T) {
	s := newSession("test", []question.SavedQuestion{
		mcQuestion(1, "math", "B"),
		mcQuestion(2, "math", "B"),
		mcQuestion(3, "math", "B"),
		mcQuestion(4, "history", "B"),
		mcQuestion(5, "history", "B"),
	})

	answer := func(idx int, letter string) {
		s.Current = idx
		s.Select(letter)
		s.Submit()
	}
	answer(0, "B") // correct
	answer(1, "B") // correct
	answer(2, "A") // wrong
	answer(3, "B") // correct
	answer(4, "A") // wrong

	r := Aggregate(s)

	if r.CorrectCount != 3 || r.TotalCount != 5 {
		t.Errorf("score = %d/%d, want 3/5", r.CorrectCount, r.TotalCount)
	}
	if r.Percentage != 60 {
		t.Errorf("Percentage = %d, want 60", r.Percentage)
	}

	if got := r.PerTopic["math"]; got != (TopicStat{Correct: 2, Total: 3}) {
		t.Errorf("math = %+v, want 2/3", got)
	}
	if got := r.PerTopic["history"]; got != (TopicStat{Correct: 1, Total: 2}) {
		t.Errorf("history = %+v, want 1/2", got)
	}

	// Per-topic totals sum to the session total.
	sum := 0
	for _, stat := range r.PerTopic {
		sum += stat.Total
	}
	if sum != r.TotalCount {
		t.Errorf("topic totals sum to %d, want %d", sum, r.TotalCount)
	}
}

func TestAggregate_MissedInSessionOrder(t *testing.T) {
	s := newSession("test", []question.SavedQuestion{
		mcQuestion(1, "math", "B"),
		mcQuestion(2, "math", "B"),
		mcQuestion(3, "history", "B"),
	})

	s.Current = 0
	s.Select("A")
	s.Submit() // wrong
	s.Current = 1
	s.Select("B")
	s.Submit() // correct
	// Question 3 never answered.

	r := Aggregate(s)

	if len(r.Missed) != 2 {
		t.Fatalf("len(Missed) = %d, want 2", len(r.Missed))
	}
	if r.Missed[0].Question.ID != 1 || r.Missed[0].UserAnswer != "A" {
		t.Errorf("Missed[0] = %+v, want question 1 with answer A", r.Missed[0])
	}
	// Unanswered-at-end counts as incorrect with no user answer.
	if r.Missed[1].Question.ID != 3 || r.Missed[1].UserAnswer != "" {
		t.Errorf("Missed[1] = %+v, want question 3 with empty answer", r.Missed[1])
	}
}

func TestAggregate_PercentageRounds(t *testing.T) {
	s := newSession("test", []question.SavedQuestion{
		mcQuestion(1, "math", "B"),
		mcQuestion(2, "math", "B"),
		mcQuestion(3, "math", "B"),
	})
	s.Current = 0
	s.Select("B")
	s.Submit()

	// 1/3 rounds to 33, 2/3 rounds to 67.
	if r := Aggregate(s); r.Percentage != 33 {
		t.Errorf("Percentage = %d, want 33", r.Percentage)
	}
	s.Current = 1
	s.Select("B")
	s.Submit()
	if r := Aggregate(s); r.Percentage != 67 {
		t.Errorf("Percentage = %d, want 67", r.Percentage)
	}
}

func TestAggregate_TopicOrderIsFirstSeen(t *testing.T) {
	s := newSession("test", []question.SavedQuestion{
		mcQuestion(1, "history", "B"),
		mcQuestion(2, "math", "B"),
		mcQuestion(3, "history", "B"),
	})

	r := Aggregate(s)
	want := []string{"history", "math"}
	if len(r.TopicOrder) != 2 || r.TopicOrder[0] != want[0] || r.TopicOrder[1] != want[1] {
		t.Errorf("TopicOrder = %v, want %v", r.TopicOrder, want)
	}
}
