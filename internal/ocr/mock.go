package ocr

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockEngine.
type MockResponse struct {
	Text string
	Err  error
}

// MockEngine is a deterministic Engine for testing. It returns canned
// responses in FIFO order and records all requests.
type MockEngine struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Image
}

// NewMockEngine creates a MockEngine with the given canned responses.
func NewMockEngine(responses ...MockResponse) *MockEngine {
	return &MockEngine{responses: responses}
}

// Recognize returns the next canned response or ErrProviderUnavailable if
// the queue is empty. It still emits the standard progress stages.
func (m *MockEngine) Recognize(_ context.Context, img Image, progress func(Progress)) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, img)

	report(progress, "preparing image", 0)
	report(progress, "recognizing text", 0.5)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	report(progress, "done", 1)
	return &Result{Text: resp.Text}, nil
}

// ModelID returns "mock".
func (m *MockEngine) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockEngine) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Recognize calls made.
func (m *MockEngine) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
