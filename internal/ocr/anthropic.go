package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// maxExtractionTokens bounds the recognition response. A dense scanned page
// stays well under this.
const maxExtractionTokens = 2048

// AnthropicEngine implements Engine using the Anthropic SDK.
type AnthropicEngine struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicEngine creates a new Anthropic recognition engine.
func NewAnthropicEngine(cfg AnthropicConfig) (*AnthropicEngine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	model := resolveModel(cfg.Model, anthropicModels)

	return &AnthropicEngine{
		client: &client,
		model:  model,
	}, nil
}

func (e *AnthropicEngine) Recognize(ctx context.Context, img Image, progress func(Progress)) (*Result, error) {
	report(progress, "preparing image", 0)

	encoded := base64.StdEncoding.EncodeToString(img.Data)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: maxExtractionTokens,
		System: []anthropic.TextBlockParam{
			{Text: extractionPrompt},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewImageBlockBase64(img.MIME, encoded),
					anthropic.NewTextBlock("Extract the text from this image."),
				},
			},
		},
		OutputConfig: anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{
				Schema: ExtractionSchema.Definition,
			},
		},
	}

	report(progress, "recognizing text", 0.5)
	msg, err := e.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	content, err := extractAnthropicContent(msg)
	if err != nil {
		return nil, err
	}
	if err := validateResponse(ExtractionSchema, content); err != nil {
		return nil, err
	}

	report(progress, "done", 1)
	return decodeResult(content)
}

func (e *AnthropicEngine) ModelID() string {
	return e.model
}

func extractAnthropicContent(msg *anthropic.Message) (json.RawMessage, error) {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return json.RawMessage(block.Text), nil
		}
	}
	return nil, &ErrInvalidResponse{
		Err: fmt.Errorf("no text content in Anthropic response"),
	}
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.StatusCode >= 500:
			return &ErrProviderUnavailable{Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// Not in the map: use as-is (allows direct model IDs).
	return name
}
