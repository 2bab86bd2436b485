package capture

import "github.com/abhisek/snapstudy/internal/ocr"

// progressMsg carries a recognition progress update from the engine.
type progressMsg ocr.Progress

// recognizedMsg is sent when the recognition call finishes.
type recognizedMsg struct {
	Text string
	Err  error
}

// savedMsg is sent when the question has been written to the store.
type savedMsg struct {
	Count int
	Err   error
}
