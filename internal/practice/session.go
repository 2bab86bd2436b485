package practice

import "github.com/abhisek/snapstudy/internal/question"

// Answer is the per-question state within a session. It moves through
// unanswered -> selected -> submitted; submission is terminal and freezes
// Selected. Correct is meaningful only once Submitted is true.
type Answer struct {
	Selected  string
	Submitted bool
	Correct   bool
}

// Session holds an ordered practice set and its index-aligned answers.
// Every question is multiple-choice with a known correct answer. A session
// is owned by a single UI flow; starting a new one discards the old session
// wholesale.
type Session struct {
	ID        string
	Questions []question.SavedQuestion
	Answers   []Answer
	Current   int
}

func newSession(id string, qs []question.SavedQuestion) *Session {
	return &Session{
		ID:        id,
		Questions: qs,
		Answers:   make([]Answer, len(qs)),
	}
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() *question.SavedQuestion {
	return &s.Questions[s.Current]
}

// CurrentAnswer returns the answer state at the current index.
func (s *Session) CurrentAnswer() *Answer {
	return &s.Answers[s.Current]
}

// Select records the chosen letter for the current question. Repeated calls
// before submission overwrite the selection. Once submitted the call is a
// strict no-op and returns false.
func (s *Session) Select(letter string) bool {
	a := s.CurrentAnswer()
	if a.Submitted {
		return false
	}
	a.Selected = letter
	return true
}

// Submit locks in the current selection and grades it. It requires a
// selection and is idempotent: a second call changes nothing and returns
// false.
func (s *Session) Submit() bool {
	a := s.CurrentAnswer()
	if a.Submitted || a.Selected == "" {
		return false
	}
	a.Submitted = true
	a.Correct = a.Selected == s.CurrentQuestion().CorrectAnswer
	return true
}

// Advance moves the current index by delta (+1 or -1). Backward movement
// clamps at index 0. Forward movement from the last index never increments;
// instead it reports session completion, and only once that last answer is
// submitted. Navigation preserves all answer state in both directions.
func (s *Session) Advance(delta int) (completed bool) {
	if delta < 0 {
		if s.Current > 0 {
			s.Current--
		}
		return false
	}

	if s.Current == s.Len()-1 {
		return s.CurrentAnswer().Submitted
	}
	s.Current++
	return false
}

// SubmittedCount returns how many answers have been submitted so far.
func (s *Session) SubmittedCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Submitted {
			n++
		}
	}
	return n
}

// CorrectCount returns how many submitted answers were correct.
func (s *Session) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Submitted && a.Correct {
			n++
		}
	}
	return n
}
