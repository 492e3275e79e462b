package upload

import (
	"errors"
	"net/http"
	"strings"
)

// MaxImageBytes is the largest article image accepted (5 MiB).
const MaxImageBytes int64 = 5 * 1024 * 1024

var (
	ErrNotImage      = errors.New("File harus berupa gambar")
	ErrImageTooLarge = errors.New("Ukuran gambar maksimal 5MB")
	ErrScriptable    = errors.New("SVG/HTML tidak diizinkan sebagai gambar artikel")
)

// ValidateImage checks an article image before anything is sent to the image host.
// declaredType is the part's Content-Type header, head the first bytes of the file.
// The returned MIME type is the one to announce to the image host.
func ValidateImage(declaredType string, size int64, head []byte) (string, error) {
	if size > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	declared := strings.ToLower(strings.TrimSpace(declaredType))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared != "" && !strings.HasPrefix(declared, "image/") {
		return "", ErrNotImage
	}
	if declared == "image/svg+xml" {
		return "", ErrScriptable
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of the declared type
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", ErrScriptable
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", ErrScriptable
	}

	if strings.HasPrefix(detected, "image/") {
		return detected, nil
	}

	// Some formats (e.g. AVIF, HEIC) sniff as octet-stream; trust the declared image type then
	if detected == "application/octet-stream" && declared != "" {
		return declared, nil
	}

	return "", ErrNotImage
}
