package question

import (
	"errors"
	"fmt"
	"time"
)

// Source records how a question's structure was detected.
type Source string

const (
	// SourceManual means the user marked the options with an explicit
	// "#options:" line.
	SourceManual Source = "manual"
	// SourceAutomatic means the lettered options were detected heuristically.
	SourceAutomatic Source = "automatic"
)

// Kind distinguishes structured multiple-choice questions from plain text.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindText           Kind = "text"
)

// Option is a single lettered choice. Display order is input order.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// ParsedQuestion is the structured form of a multiple-choice question.
// Letters are distinct and Options holds at least two entries.
type ParsedQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
	Source  Source   `json:"source"`
}

// Letters returns the option letters in display order.
func (p *ParsedQuestion) Letters() []string {
	out := make([]string, len(p.Options))
	for i, o := range p.Options {
		out[i] = o.Letter
	}
	return out
}

// HasLetter reports whether letter is one of the option letters.
func (p *ParsedQuestion) HasLetter(letter string) bool {
	for _, o := range p.Options {
		if o.Letter == letter {
			return true
		}
	}
	return false
}

// SavedQuestion is the persisted record. It is immutable after creation;
// the only lifecycle operation besides creation is deletion by ID.
// Kind is KindMultipleChoice exactly when Parsed is non-nil, and
// CorrectAnswer, when set, equals one of Parsed's option letters.
type SavedQuestion struct {
	ID            int64           `json:"id"`
	RawText       string          `json:"rawText"`
	Tag           string          `json:"tag"`
	Explanation   string          `json:"explanation,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	Kind          Kind            `json:"kind"`
	Parsed        *ParsedQuestion `json:"parsed,omitempty"`
	CorrectAnswer string          `json:"correctAnswer,omitempty"`
}

// Validation failures for Draft.Build. All block the save; the caller keeps
// its form state so the user can correct and retry.
var (
	ErrMissingText   = errors.New("extracted text is required")
	ErrMissingTag    = errors.New("a tag is required")
	ErrMissingAnswer = errors.New("a correct answer is required for a multiple-choice question")
)

// ErrUnknownAnswer indicates the chosen correct answer is not one of the
// parsed option letters.
type ErrUnknownAnswer struct {
	Letter string
}

func (e *ErrUnknownAnswer) Error() string {
	return fmt.Sprintf("correct answer %q is not one of the option letters", e.Letter)
}

// Draft collects the form state for a question about to be saved.
type Draft struct {
	RawText       string
	Tag           string
	Explanation   string
	Parsed        *ParsedQuestion
	CorrectAnswer string
}

// Build validates the draft and produces the immutable SavedQuestion.
// The ID is derived from now in milliseconds; the store bumps it further
// if the newest stored record already claims that millisecond.
func (d Draft) Build(now time.Time) (*SavedQuestion, error) {
	if d.RawText == "" {
		return nil, ErrMissingText
	}
	if d.Tag == "" {
		return nil, ErrMissingTag
	}

	kind := KindText
	if d.Parsed != nil {
		kind = KindMultipleChoice
		if d.CorrectAnswer == "" {
			return nil, ErrMissingAnswer
		}
		if !d.Parsed.HasLetter(d.CorrectAnswer) {
			return nil, &ErrUnknownAnswer{Letter: d.CorrectAnswer}
		}
	}

	return &SavedQuestion{
		ID:            now.UnixMilli(),
		RawText:       d.RawText,
		Tag:           d.Tag,
		Explanation:   d.Explanation,
		CreatedAt:     now,
		Kind:          kind,
		Parsed:        d.Parsed,
		CorrectAnswer: d.CorrectAnswer,
	}, nil
}

// Practicable reports whether q can appear in a practice session:
// a multiple-choice question with parsed structure and a known answer.
func (q *SavedQuestion) Practicable() bool {
	return q.Kind == KindMultipleChoice && q.Parsed != nil && q.CorrectAnswer != ""
}
