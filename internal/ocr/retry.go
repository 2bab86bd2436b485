package ocr

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryEngine is a decorator that retries transient errors with exponential
// backoff and jitter.
type RetryEngine struct {
	inner  Engine
	config RetryConfig
}

// WithRetry wraps an Engine with retry logic. MaxAttempts below 1 is
// clamped to a single attempt so a zero-value config cannot swallow calls.
func WithRetry(e Engine, cfg RetryConfig) Engine {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryEngine{inner: e, config: cfg}
}

func (r *RetryEngine) Recognize(ctx context.Context, img Image, progress func(Progress)) (*Result, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		res, err := r.inner.Recognize(ctx, img, progress)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &invalidRetried) {
			return nil, err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		report(progress, "retrying", 0)
		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryEngine) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if an error is retryable.
func (r *RetryEngine) shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// A bad input file won't get better on retry.
	var unsupported *ErrUnsupportedImage
	if errors.As(err, &unsupported) {
		return false
	}

	// Invalid response gets one retry.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limit and provider unavailable are retryable.
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Other errors (network, etc.) are treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryEngine) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
