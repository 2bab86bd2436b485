package ocr

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/snapstudy/internal/store"
)

// LoggingEngine is a decorator that records every recognition request as an
// event for `snapstudy ocr list`.
type LoggingEngine struct {
	inner     Engine
	eventRepo store.EventRepo
}

// WithLogging wraps an Engine with event logging.
func WithLogging(e Engine, repo store.EventRepo) Engine {
	return &LoggingEngine{inner: e, eventRepo: repo}
}

func (l *LoggingEngine) Recognize(ctx context.Context, img Image, progress func(Progress)) (*Result, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	res, err := l.inner.Recognize(ctx, img, progress)

	data := store.OCRRequestEventData{
		Provider:   l.inner.ModelID(),
		Model:      l.inner.ModelID(),
		Purpose:    purpose,
		ImageBytes: len(img.Data),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if res != nil {
		data.TextChars = len(res.Text)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendOCRRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log OCR request event: %v\n", logErr)
	}

	return res, err
}

func (l *LoggingEngine) ModelID() string {
	return l.inner.ModelID()
}
