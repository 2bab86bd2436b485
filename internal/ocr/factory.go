package ocr

import (
	"context"
	"fmt"

	"github.com/abhisek/snapstudy/internal/store"
)

// NewEngine creates an Engine from configuration, wrapped with retry and
// event logging middleware.
func NewEngine(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Engine, error) {
	var base Engine
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicEngine(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIEngine(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiEngine(ctx, cfg.Gemini)
	case "mock":
		return NewMockEngine(), nil
	default:
		return nil, fmt.Errorf("unknown recognition provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s engine: %w", cfg.Provider, err)
	}

	// Middleware chain: caller -> retry -> logging -> base.
	// Logging is skipped when no event repo is available.
	if eventRepo != nil {
		base = WithLogging(base, eventRepo)
	}
	return WithRetry(base, cfg.Retry), nil
}

// NewEngineFromEnv builds an Engine from SNAPSTUDY_* environment variables,
// falling back to DiscoverConfig when no provider is configured explicitly.
func NewEngineFromEnv(ctx context.Context, eventRepo store.EventRepo) (Engine, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewEngine(ctx, cfg, eventRepo)
}
