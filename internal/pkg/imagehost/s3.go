package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// S3Config holds the bucket settings for S3-compatible image hosting
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	PublicBaseURL   string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores images in a bucket and serves them from PublicBaseURL.
type S3 struct {
	client  putObjectAPI
	bucket  string
	baseURL string
	now     func() time.Time
}

// NewS3 creates an S3 uploader from static credentials
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		}
	})

	log.Infof("[ImageHost] Using S3 bucket: %s", cfg.BucketName)
	return newS3WithClient(client, cfg), nil
}

func newS3WithClient(client putObjectAPI, cfg S3Config) *S3 {
	return &S3{
		client:  client,
		bucket:  cfg.BucketName,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		now:     time.Now,
	}
}

// ObjectKey builds artikel/YYYY/MM/<uuid><ext>
func ObjectKey(id, ext string, at time.Time) string {
	return fmt.Sprintf("artikel/%04d/%02d/%s%s", at.Year(), int(at.Month()), id, ext)
}

// Upload puts the image under a fresh key and returns its public URL.
func (s *S3) Upload(ctx context.Context, img Image) (string, error) {
	key := ObjectKey(uuid.New().String(), img.Extension(), s.now().UTC())

	// the SDK rewinds the body after hashing it for plain-HTTP endpoints
	body, ok := img.Body.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(img.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", img.Filename, err)
		}
		body = bytes.NewReader(data)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if img.ContentType != "" {
		input.ContentType = aws.String(img.ContentType)
	}
	if img.Size > 0 {
		input.ContentLength = aws.Int64(img.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}

	if s.baseURL == "" {
		return "", ErrMissingURL
	}

	url := s.baseURL + "/" + key
	log.Infof("[ImageHost] Uploaded %s to S3: %s", img.Filename, url)
	return url, nil
}
