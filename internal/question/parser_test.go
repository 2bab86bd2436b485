package question

import (
	"strings"
	"testing"
)

func TestParse_AutomaticDetection(t *testing.T) {
	raw := "What is 2+2?\nA) 3\nB) 4\nC) 5"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}

	if p.Source != SourceAutomatic {
		t.Errorf("Source = %q, want %q", p.Source, SourceAutomatic)
	}
	if p.Prompt != "What is 2+2?" {
		t.Errorf("Prompt = %q, want %q", p.Prompt, "What is 2+2?")
	}

	want := []Option{{"A", "3"}, {"B", "4"}, {"C", "5"}}
	if len(p.Options) != len(want) {
		t.Fatalf("got %d options, want %d", len(p.Options), len(want))
	}
	for i, o := range p.Options {
		if o != want[i] {
			t.Errorf("Options[%d] = %+v, want %+v", i, o, want[i])
		}
	}
}

func TestParse_ManualMarker(t *testing.T) {
	raw := "Capitalize France.\n#options:\nParis\nLondon"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}

	if p.Source != SourceManual {
		t.Errorf("Source = %q, want %q", p.Source, SourceManual)
	}
	if p.Prompt != "Capitalize France." {
		t.Errorf("Prompt = %q, want %q", p.Prompt, "Capitalize France.")
	}

	want := []Option{{"A", "Paris"}, {"B", "London"}}
	for i, o := range p.Options {
		if o != want[i] {
			t.Errorf("Options[%d] = %+v, want %+v", i, o, want[i])
		}
	}
}

func TestParse_MarkerWinsOverLetteredLines(t *testing.T) {
	// The marker phase runs first even when the trailing lines would also
	// match the heuristic pattern.
	raw := "Which of these is a prime number?\n#options:\nA) 4\nB) 7"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if p.Source != SourceManual {
		t.Errorf("Source = %q, want %q", p.Source, SourceManual)
	}
	// Manual mode letters come from position, and the raw line text is kept.
	if p.Options[0].Letter != "A" || p.Options[0].Text != "A) 4" {
		t.Errorf("Options[0] = %+v, want letter A with raw text", p.Options[0])
	}
}

func TestParse_MarkerCaseInsensitive(t *testing.T) {
	raw := "Name the largest planet.\n#OPTIONS:\nJupiter\nSaturn"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if p.Source != SourceManual {
		t.Errorf("Source = %q, want %q", p.Source, SourceManual)
	}
}

func TestParse_MarkerSkipsBlankOptionLines(t *testing.T) {
	raw := "Pick the even number below.\n#options:\nthree\n\n   \nfour\nfive"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if len(p.Options) != 3 {
		t.Fatalf("got %d options, want 3", len(p.Options))
	}
	letters := []string{"A", "B", "C"}
	for i, o := range p.Options {
		if o.Letter != letters[i] {
			t.Errorf("Options[%d].Letter = %q, want %q", i, o.Letter, letters[i])
		}
	}
}

func TestParse_MarkerTooFewOptions(t *testing.T) {
	raw := "Capitalize France.\n#options:\nParis"
	if _, ok := Parse(raw); ok {
		t.Error("expected parse to fail with a single option")
	}
}

func TestParse_MarkerPromptTooShort(t *testing.T) {
	// Manual mode requires a prompt longer than 5 characters.
	raw := "2+2?\n#options:\nthree\nfour"
	if _, ok := Parse(raw); ok {
		t.Error("expected parse to fail with a 4-char prompt")
	}
}

func TestParse_PromptLengthCountsRunes(t *testing.T) {
	// "héélo" is 5 runes but 7 bytes; the manual floor must reject it the
	// same way it rejects a 5-letter ASCII prompt.
	raw := "héélo\n#options:\nalpha\nbeta"
	if _, ok := Parse(raw); ok {
		t.Error("expected parse to fail with a 5-rune prompt")
	}

	raw = "hééllo\n#options:\nalpha\nbeta"
	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed with a 6-rune prompt")
	}
	if p.Source != SourceManual {
		t.Errorf("Source = %q, want manual", p.Source)
	}

	// 10 runes, 14 bytes: still under the automatic floor.
	raw = "çafé münü?\nA) sí\nB) no"
	if _, ok := Parse(raw); ok {
		t.Error("expected parse to fail with a 10-rune prompt")
	}
}

func TestParse_AutomaticLowercaseLetters(t *testing.T) {
	raw := "Which gas do plants absorb?\na) oxygen\nb) carbon dioxide"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if p.Options[0].Letter != "A" || p.Options[1].Letter != "B" {
		t.Errorf("letters = %v, want upper-cased A, B", p.Letters())
	}
}

func TestParse_AutomaticDotSeparator(t *testing.T) {
	raw := "Which answer uses dots?\nA. first\nB. second"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if p.Options[0].Text != "first" || p.Options[1].Text != "second" {
		t.Errorf("options = %+v, want separator stripped", p.Options)
	}
}

func TestParse_AutomaticMultilinePrompt(t *testing.T) {
	raw := "Read the passage.\nThen answer the question below.\nA) yes\nB) no"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := "Read the passage.\nThen answer the question below."
	if p.Prompt != want {
		t.Errorf("Prompt = %q, want embedded line break preserved", p.Prompt)
	}
}

func TestParse_AutomaticIgnoresTrailingNoise(t *testing.T) {
	// Lines after the boundary that don't match the option pattern are
	// dropped, not appended to the prompt or any option.
	raw := "What is the boiling point of water?\nA) 90C\nB) 100C\n-- scanned page 3 --"

	p, ok := Parse(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if len(p.Options) != 2 {
		t.Fatalf("got %d options, want 2", len(p.Options))
	}
	if strings.Contains(p.Prompt, "scanned") {
		t.Errorf("Prompt = %q, noise leaked into prompt", p.Prompt)
	}
}

func TestParse_AutomaticPromptTooShort(t *testing.T) {
	// Automatic mode requires a prompt longer than 10 characters.
	raw := "Pick one:\nA) yes\nB) no"
	if _, ok := Parse(raw); ok {
		t.Error("expected parse to fail with a short prompt")
	}
}

func TestParse_AutomaticDuplicateLetters(t *testing.T) {
	raw := "Which answer repeats a letter?\nA) first\nA) second"
	if _, ok := Parse(raw); ok {
		t.Error("expected parse to fail on duplicate letters")
	}
}

func TestParse_NoStructure(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t\n"},
		{"single line", "Explain photosynthesis in your own words."},
		{"prose paragraphs", "First paragraph of notes.\nSecond paragraph of notes."},
		{"one option only", "What is 2+2, really?\nA) 4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if p, ok := Parse(tc.raw); ok {
				t.Errorf("Parse(%q) = %+v, want no result", tc.raw, p)
			}
		})
	}
}
