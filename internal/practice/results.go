package practice

import (
	"math"

	"github.com/abhisek/snapstudy/internal/question"
)

// TopicStat is the per-tag score within a session.
type TopicStat struct {
	Correct int
	Total   int
}

// Missed pairs a missed question with the user's answer. UserAnswer is empty
// when the question was never answered.
type Missed struct {
	Question   question.SavedQuestion
	UserAnswer string
}

// Results is the reduction of a finished session.
type Results struct {
	CorrectCount int
	TotalCount   int
	Percentage   int
	PerTopic     map[string]TopicStat
	TopicOrder   []string
	Missed       []Missed
}

// Aggregate reduces a session into overall and per-topic statistics plus the
// missed-question list. Per-topic stats accumulate in question order by each
// question's saved tag; TopicOrder records first-seen order for stable
// display. A question left unanswered at session end counts as incorrect.
func Aggregate(s *Session) Results {
	r := Results{
		TotalCount: s.Len(),
		PerTopic:   make(map[string]TopicStat),
	}

	for i, q := range s.Questions {
		a := s.Answers[i]

		stat, seen := r.PerTopic[q.Tag]
		if !seen {
			r.TopicOrder = append(r.TopicOrder, q.Tag)
		}
		stat.Total++

		if a.Submitted && a.Correct {
			stat.Correct++
			r.CorrectCount++
		} else {
			r.Missed = append(r.Missed, Missed{Question: q, UserAnswer: a.Selected})
		}
		r.PerTopic[q.Tag] = stat
	}

	if r.TotalCount > 0 {
		r.Percentage = int(math.Round(float64(r.CorrectCount) / float64(r.TotalCount) * 100))
	}
	return r
}
