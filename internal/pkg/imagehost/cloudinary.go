package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/gofiber/fiber/v2/log"
)

const cloudinaryEndpoint = "https://api.cloudinary.com/v1_1/%s/image/upload"

// CloudinaryConfig configures unsigned uploads through an upload preset
type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	// Endpoint overrides the upload URL derived from CloudName.
	Endpoint   string
	HTTPClient *http.Client
}

// Cloudinary uploads images with a single unsigned multipart POST.
type Cloudinary struct {
	endpoint string
	preset   string
	client   *http.Client
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinary creates a Cloudinary uploader
func NewCloudinary(cfg CloudinaryConfig) *Cloudinary {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(cloudinaryEndpoint, cfg.CloudName)
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Cloudinary{
		endpoint: endpoint,
		preset:   cfg.UploadPreset,
		client:   client,
	}
}

// Upload posts the fields file and upload_preset and returns secure_url.
func (c *Cloudinary) Upload(ctx context.Context, img Image) (string, error) {
	body, contentType, err := c.encode(img)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to build cloudinary request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to cloudinary: %w", err)
	}
	defer resp.Body.Close()

	var payload cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode cloudinary response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		if payload.Error != nil && payload.Error.Message != "" {
			msg = payload.Error.Message
		}
		return "", fmt.Errorf("cloudinary upload failed (status %d): %s", resp.StatusCode, msg)
	}

	if payload.SecureURL == "" {
		return "", ErrMissingURL
	}

	log.Infof("[ImageHost] Uploaded %s to cloudinary: %s", img.Filename, payload.SecureURL)
	return payload.SecureURL, nil
}

func (c *Cloudinary) encode(img Image) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, img.Filename))
	if img.ContentType != "" {
		header.Set("Content-Type", img.ContentType)
	} else {
		header.Set("Content-Type", "application/octet-stream")
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, img.Body); err != nil {
		return nil, "", fmt.Errorf("failed to copy image: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return nil, "", fmt.Errorf("failed to write upload_preset: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}
