package ocr

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func testImage() Image {
	return Image{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MIME: "image/png"}
}

func TestRetry_ZeroAttemptsClampedToOne(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Text: "still runs once"},
	)
	e := WithRetry(mock, RetryConfig{})

	res, err := e.Recognize(context.Background(), testImage(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || res.Text != "still runs once" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Text: "What is 2+2?"},
	)
	e := WithRetry(mock, retryConfig())

	res, err := e.Recognize(context.Background(), testImage(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "What is 2+2?" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Text: "recovered"},
	)
	e := WithRetry(mock, retryConfig())

	res, err := e.Recognize(context.Background(), testImage(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "recovered" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	e := WithRetry(mock, retryConfig())

	_, err := e.Recognize(context.Background(), testImage(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_UnsupportedImageNotRetried(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Err: &ErrUnsupportedImage{MIME: "text/plain"}},
	)
	e := WithRetry(mock, retryConfig())

	_, err := e.Recognize(context.Background(), testImage(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var unsupported *ErrUnsupportedImage
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedImage, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
		MockResponse{Text: "won't be reached"},
	)
	e := WithRetry(mock, retryConfig())

	_, err := e.Recognize(context.Background(), testImage(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	// Should have retried once (2 calls total), then stopped.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Text: "never"},
	)
	e := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately.

	_, err := e.Recognize(ctx, testImage(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockEngine(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Text: "ok"},
	)
	e := WithRetry(mock, retryConfig())

	res, err := e.Recognize(context.Background(), testImage(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "ok" {
		t.Fatalf("unexpected text: %q", res.Text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockEngine()
	e := WithRetry(mock, retryConfig())
	if e.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", e.ModelID())
	}
}
