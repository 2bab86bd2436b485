package capture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/snapstudy/internal/ocr"
)

// Minimal valid PNG header followed by padding so MIME sniffing
// recognizes the signature.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, pngHeader, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRecognizeForwardsProgress(t *testing.T) {
	engine := ocr.NewMockEngine(
		ocr.MockResponse{Text: "What is 2+2?\nA) 3\nB) 4"},
	)
	c := New(nil, engine)
	c.progressCh = make(chan ocr.Progress, 8)

	msg := c.recognize(writeTestImage(t))()
	rec, ok := msg.(recognizedMsg)
	if !ok {
		t.Fatalf("got %T, want recognizedMsg", msg)
	}
	if rec.Err != nil {
		t.Fatalf("unexpected error: %v", rec.Err)
	}

	// The closed channel drains through waitProgress until it yields nil.
	var updates []progressMsg
	for {
		m := waitProgress(c.progressCh)()
		if m == nil {
			break
		}
		pm, ok := m.(progressMsg)
		if !ok {
			t.Fatalf("got %T, want progressMsg", m)
		}
		if pm.Fraction < 0 || pm.Fraction > 1 {
			t.Fatalf("Fraction = %v, want within [0, 1]", pm.Fraction)
		}
		updates = append(updates, pm)
	}
	if len(updates) == 0 {
		t.Fatal("expected at least one progress update")
	}
}

func TestUpdateTracksProgress(t *testing.T) {
	engine := ocr.NewMockEngine()
	c := New(nil, engine)
	c.phase = phaseRecognizing
	c.progressCh = make(chan ocr.Progress, 1)

	_, cmd := c.Update(progressMsg{Status: "recognizing text", Fraction: 0.5})
	if c.fraction != 0.5 || c.status != "recognizing text" {
		t.Fatalf("fraction=%v status=%q, want 0.5 and %q", c.fraction, c.status, "recognizing text")
	}
	if cmd == nil {
		t.Fatal("expected Update to re-arm the progress wait")
	}
}

func TestRecognizeBadImageSurfacesError(t *testing.T) {
	engine := ocr.NewMockEngine()
	c := New(nil, engine)
	c.progressCh = make(chan ocr.Progress, 1)

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just text"), 0o600); err != nil {
		t.Fatal(err)
	}

	msg := c.recognize(path)()
	rec, ok := msg.(recognizedMsg)
	if !ok {
		t.Fatalf("got %T, want recognizedMsg", msg)
	}
	if rec.Err == nil {
		t.Fatal("expected an error for a non-image file")
	}
	if engine.CallCount() != 0 {
		t.Fatalf("engine called %d times for an unloadable image, want 0", engine.CallCount())
	}
}
