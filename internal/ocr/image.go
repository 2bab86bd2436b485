package ocr

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

// supportedMIMEs are the image types all configured providers accept.
var supportedMIMEs = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// LoadImage reads an image file and sniffs its content type. It returns
// ErrUnsupportedImage if the file is not a recognized image format.
func LoadImage(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("reading image: %w", err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("image file %s is empty", path)
	}

	mime := http.DetectContentType(data)
	// DetectContentType can append parameters, e.g. "text/plain; charset=utf-8".
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if !supportedMIMEs[mime] {
		return Image{}, &ErrUnsupportedImage{MIME: mime}
	}

	return Image{Data: data, MIME: mime}, nil
}
