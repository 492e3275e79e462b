package imagehost

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// ErrMissingURL is returned when the host accepted the request but handed back no public URL.
var ErrMissingURL = errors.New("image host returned no public URL")

// Image is an article image that already passed upload.ValidateImage.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader stores an image with an external host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, img Image) (string, error)
}

// Extension picks a file extension for the stored object, preferring the
// client's filename and falling back to the MIME type.
func (img Image) Extension() string {
	if ext := strings.ToLower(filepath.Ext(img.Filename)); ext != "" {
		return ext
	}
	switch img.ContentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/avif":
		return ".avif"
	case "image/bmp":
		return ".bmp"
	default:
		return ""
	}
}
