package ocr

import (
	"context"
	"encoding/json"
	"fmt"
)

// Engine is the core abstraction for optical character recognition.
// Implementations send the image to a vision-capable model and return the
// extracted text.
type Engine interface {
	// Recognize extracts text from the image. The progress callback, when
	// non-nil, receives coarse status updates with fractions in [0, 1].
	Recognize(ctx context.Context, img Image, progress func(Progress)) (*Result, error)

	// ModelID returns the model identifier this engine is configured to use.
	ModelID() string
}

// Image is the raw picture handed to an engine.
type Image struct {
	Data []byte
	MIME string
}

// Result holds the recognized text.
type Result struct {
	Text string `json:"text"`
}

// Progress is an observable recognition status update.
type Progress struct {
	Status   string
	Fraction float64
}

// report invokes the progress callback if one was supplied.
func report(progress func(Progress), status string, fraction float64) {
	if progress != nil {
		progress(Progress{Status: status, Fraction: fraction})
	}
}

// decodeResult parses the schema-validated JSON content into a Result.
func decodeResult(content json.RawMessage) (*Result, error) {
	var res Result
	if err := json.Unmarshal(content, &res); err != nil {
		return nil, &ErrInvalidResponse{
			Content: content,
			Err:     fmt.Errorf("decode extraction result: %w", err),
		}
	}
	return &res, nil
}
