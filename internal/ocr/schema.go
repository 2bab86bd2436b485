package ocr

// extractionPrompt is the system instruction for all recognition providers.
const extractionPrompt = `You are an OCR engine. Extract every piece of text from the supplied image of a study question, preserving line breaks and reading order. Do not translate, summarize, correct, or annotate the text. If the image contains no legible text, return an empty string.`

// ExtractionSchema defines the JSON shape recognition responses must follow.
var ExtractionSchema = &Schema{
	Name:        "extracted-text",
	Description: "Text extracted verbatim from an image",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "All text found in the image, with original line breaks. Empty when no text is legible.",
			},
		},
		"required":             []any{"text"},
		"additionalProperties": false,
	},
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}
