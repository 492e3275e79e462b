package imagehost

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/harsoyo/notaris-web/internal/pkg/env"
)

const (
	HostCloudinary = "cloudinary"
	HostS3         = "s3"
)

// Config selects and configures the image host
type Config struct {
	Host       string
	Cloudinary CloudinaryConfig
	S3         S3Config
}

// LoadConfig loads image host configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Host: env.GetEnv("IMAGE_HOST", HostCloudinary),
		Cloudinary: CloudinaryConfig{
			CloudName:    env.GetEnv("CLOUDINARY_CLOUD_NAME", ""),
			UploadPreset: env.GetEnv("CLOUDINARY_UPLOAD_PRESET", ""),
			Endpoint:     env.GetEnv("CLOUDINARY_UPLOAD_URL", ""),
		},
		S3: S3Config{
			AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
			Region:          env.GetEnv("S3_REGION", "us-east-1"),
			BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
			EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
			PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
		},
	}

	switch cfg.Host {
	case HostCloudinary:
		if cfg.Cloudinary.Endpoint == "" && cfg.Cloudinary.CloudName == "" {
			return nil, errors.New("CLOUDINARY_CLOUD_NAME is required when IMAGE_HOST=cloudinary")
		}
		if cfg.Cloudinary.UploadPreset == "" {
			return nil, errors.New("CLOUDINARY_UPLOAD_PRESET is required when IMAGE_HOST=cloudinary")
		}
	case HostS3:
		if cfg.S3.AccessKeyID == "" || cfg.S3.SecretAccessKey == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required when IMAGE_HOST=s3")
		}
		if cfg.S3.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when IMAGE_HOST=s3")
		}
		if cfg.S3.PublicBaseURL == "" {
			return nil, errors.New("S3_PUBLIC_BASE_URL is required when IMAGE_HOST=s3")
		}
	default:
		return nil, fmt.Errorf("unknown IMAGE_HOST %q", cfg.Host)
	}

	return cfg, nil
}

// New builds the configured uploader
func New(ctx context.Context, cfg *Config) (Uploader, error) {
	switch cfg.Host {
	case HostS3:
		return NewS3(ctx, cfg.S3)
	case HostCloudinary:
		c := cfg.Cloudinary
		if c.HTTPClient == nil {
			c.HTTPClient = &http.Client{Timeout: 30 * time.Second}
		}
		return NewCloudinary(c), nil
	default:
		return nil, fmt.Errorf("unknown image host %q", cfg.Host)
	}
}
