package question

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// optionsMarker is the explicit option delimiter users can type when OCR
// mangles the A)/B) prefixes.
const optionsMarker = "#options:"

// Prompt length floors, counted in runes so accented text is measured the
// same as plain ASCII. Manual mode has a deliberate boundary so a short
// prompt is acceptable; automatic mode needs a stronger signal to avoid
// false positives on short captions.
const (
	minManualPrompt    = 5
	minAutomaticPrompt = 10
)

// optionLine matches a lettered option: a single letter A-E, an optional
// ")" or "." separator, then non-empty text. Case-insensitive on the letter.
var optionLine = regexp.MustCompile(`(?i)^([A-E])[).]?\s*(.+)$`)

// Parse converts raw OCR output into a structured multiple-choice question.
// It returns (nil, false) when no valid structure is found, in which case
// the caller falls back to saving the text unparsed.
//
// Detection is two-phase, first match wins: an explicit "#options:" marker
// line, then heuristic detection of lettered option lines.
func Parse(raw string) (*ParsedQuestion, bool) {
	lines := normalizeLines(raw)
	if len(lines) == 0 {
		return nil, false
	}

	if p, ok := parseMarked(lines); ok {
		return p, true
	}
	return parseAutomatic(lines)
}

// normalizeLines splits raw text into trimmed, non-empty lines.
func normalizeLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseMarked handles the explicit "#options:" marker. Everything before the
// marker is the prompt; each non-empty line after it becomes an option with
// letters assigned sequentially from A in input order.
func parseMarked(lines []string) (*ParsedQuestion, bool) {
	marker := -1
	for i, line := range lines {
		if strings.EqualFold(line, optionsMarker) {
			marker = i
			break
		}
	}
	if marker == -1 {
		return nil, false
	}

	prompt := strings.TrimSpace(strings.Join(lines[:marker], "\n"))

	var options []Option
	for _, line := range lines[marker+1:] {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		options = append(options, Option{
			Letter: string(rune('A' + len(options))),
			Text:   text,
		})
	}

	if len(options) < 2 || utf8.RuneCountInString(prompt) <= minManualPrompt {
		return nil, false
	}

	return &ParsedQuestion{
		Prompt:  prompt,
		Options: options,
		Source:  SourceManual,
	}, true
}

// parseAutomatic detects lettered option lines. The first matching line is
// the boundary: earlier lines form the prompt, later non-matching lines are
// ignored.
func parseAutomatic(lines []string) (*ParsedQuestion, bool) {
	var prompt string
	var options []Option
	found := false

	for i, line := range lines {
		m := optionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if !found {
			found = true
			prompt = strings.TrimSpace(strings.Join(lines[:i], "\n"))
		}
		options = append(options, Option{
			Letter: strings.ToUpper(m[1]),
			Text:   strings.TrimSpace(m[2]),
		})
	}

	if len(options) < 2 || utf8.RuneCountInString(prompt) <= minAutomaticPrompt {
		return nil, false
	}
	if !lettersDistinct(options) {
		// Repeated letters mean the OCR output is ambiguous; fall back to text.
		return nil, false
	}

	return &ParsedQuestion{
		Prompt:  prompt,
		Options: options,
		Source:  SourceAutomatic,
	}, true
}

func lettersDistinct(options []Option) bool {
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if seen[o.Letter] {
			return false
		}
		seen[o.Letter] = true
	}
	return true
}
