package markdown

import (
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	r := NewRenderer(80)
	if got := r.Render("   \n  "); got != "" {
		t.Errorf("Render(blank) = %q, want empty", got)
	}
}

func TestRender_PlainText(t *testing.T) {
	r := NewRenderer(80)
	got := r.Render("The answer is four.")
	if !strings.Contains(got, "The answer is four.") {
		t.Errorf("Render output missing source text: %q", got)
	}
}

func TestRender_ZeroWidthDefaults(t *testing.T) {
	r := NewRenderer(0)
	if r.width != 80 {
		t.Errorf("width = %d, want 80", r.width)
	}
}
