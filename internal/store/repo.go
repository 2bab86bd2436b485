package store

import (
	"context"
	"time"

	"github.com/abhisek/snapstudy/internal/question"
)

// QuestionRepo is the persistent store contract for the question collection.
// The collection is ordered newest-first and every mutation is a full
// read-modify-write: the current list is loaded, one change is applied, and
// the whole list is written back. There are no partial writes.
type QuestionRepo interface {
	// Load returns all saved questions, newest first.
	Load(ctx context.Context) ([]question.SavedQuestion, error)

	// SaveAll replaces the stored collection with list.
	SaveAll(ctx context.Context, list []question.SavedQuestion) error

	// Add prepends q to the collection. It bumps q's ID above the current
	// head's when the millisecond clock has not advanced, keeping IDs
	// strictly monotonic.
	Add(ctx context.Context, q *question.SavedQuestion) error

	// Remove deletes the question with the given ID. It reports whether a
	// record was removed.
	Remove(ctx context.Context, id int64) (bool, error)
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// OCRRequestEventData captures a single OCR request for auditing.
type OCRRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	ImageBytes   int
	TextChars    int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// OCRRequestEvent is a stored OCR request event.
type OCRRequestEvent struct {
	ID        int64
	Timestamp time.Time
	OCRRequestEventData
}

// EventRepo provides append and query access to OCR request events.
type EventRepo interface {
	// AppendOCRRequest records an OCR call event.
	AppendOCRRequest(ctx context.Context, data OCRRequestEventData) error

	// QueryOCREvents returns recorded events, newest first.
	QueryOCREvents(ctx context.Context, opts QueryOpts) ([]OCRRequestEvent, error)
}
