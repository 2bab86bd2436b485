package ocr

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(ExtractionSchema.Definition)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 1 {
		t.Fatalf("expected 1 property, got %d", len(schema.Properties))
	}
	text, ok := schema.Properties["text"]
	if !ok {
		t.Fatal("expected a text property")
	}
	if text.Type != "STRING" {
		t.Fatalf("expected STRING for text, got %s", text.Type)
	}
	if text.Description == "" {
		t.Error("expected the property description to carry over")
	}
	if len(schema.Required) != 1 || schema.Required[0] != "text" {
		t.Fatalf("expected text to be required, got %v", schema.Required)
	}
}

func TestMapGeminiError(t *testing.T) {
	rateErr := mapGeminiError(&genai.APIError{Code: http.StatusTooManyRequests})
	var rl *ErrRateLimit
	if !errors.As(rateErr, &rl) {
		t.Fatalf("expected ErrRateLimit for 429, got: %T", rateErr)
	}

	serverErr := mapGeminiError(&genai.APIError{Code: http.StatusInternalServerError})
	var unavail *ErrProviderUnavailable
	if !errors.As(serverErr, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable for 500, got: %T", serverErr)
	}

	plainErr := mapGeminiError(errors.New("connection refused"))
	if !errors.As(plainErr, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable for a plain error, got: %T", plainErr)
	}
}

func TestGeminiEngine_ModelID(t *testing.T) {
	e := &GeminiEngine{model: "gemini-2.0-flash"}
	if e.ModelID() != "gemini-2.0-flash" {
		t.Fatalf("expected 'gemini-2.0-flash', got %q", e.ModelID())
	}
}
