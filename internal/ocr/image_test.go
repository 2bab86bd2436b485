package ocr

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Minimal valid PNG header followed by padding so DetectContentType
// recognizes the signature.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestLoadImage_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, pngHeader, 0o600); err != nil {
		t.Fatal(err)
	}

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MIME != "image/png" {
		t.Errorf("MIME = %q, want %q", img.MIME, "image/png")
	}
	if len(img.Data) != len(pngHeader) {
		t.Errorf("Data length = %d, want %d", len(img.Data), len(pngHeader))
	}
}

func TestLoadImage_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text, not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadImage(path)
	var unsupported *ErrUnsupportedImage
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedImage, got: %v", err)
	}
	if unsupported.MIME != "text/plain" {
		t.Errorf("MIME = %q, want %q", unsupported.MIME, "text/plain")
	}
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadImage_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadImage(path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}
