package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/app/repository"
	"github.com/harsoyo/notaris-web/internal/pkg/imagehost"
	"github.com/harsoyo/notaris-web/internal/pkg/localtime"
	"github.com/harsoyo/notaris-web/internal/pkg/slug"
	"github.com/harsoyo/notaris-web/internal/pkg/upload"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
)

const sniffLen = 512

// ImageInput is the optional image attached to a create request.
type ImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CreateInput holds the submitted article form
type CreateInput struct {
	Title       string
	Description string
	Body        string
	Author      string
	Image       *ImageInput
}

// Service runs the article create, list, lookup and delete flows.
type Service struct {
	repo          repository.ArticleRepository
	uploader      imagehost.Uploader
	clock         localtime.Clock
	defaultAuthor string
}

type Option func(*Service)

// WithClock replaces the wall clock used for upload stamps.
func WithClock(c localtime.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithDefaultAuthor sets the author used when the form leaves it blank.
func WithDefaultAuthor(author string) Option {
	return func(s *Service) {
		if author != "" {
			s.defaultAuthor = author
		}
	}
}

func NewService(repo repository.ArticleRepository, uploader imagehost.Uploader, opts ...Option) *Service {
	s := &Service{
		repo:          repo,
		uploader:      uploader,
		defaultAuthor: models.DefaultAuthor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates, uploads the image if any, stamps and inserts a new article.
// No network call happens before the fields and image are valid.
func (s *Service) Create(ctx context.Context, sess usercontext.UserContext, in CreateInput) (*models.Article, error) {
	if !sess.IsLoggedIn {
		return nil, ErrNotAuthenticated
	}

	// whitespace only counts as empty, but fields are stored as submitted
	if blank(in.Title) || blank(in.Description) || blank(in.Body) {
		return nil, invalid(ErrValidation)
	}

	var img *imagehost.Image
	if in.Image != nil && in.Image.Body != nil {
		prepared, err := prepareImage(in.Image)
		if err != nil {
			return nil, err
		}
		img = prepared
	}

	draft := &models.Article{
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		Author:      in.Author,
	}
	if blank(draft.Author) {
		draft.Author = s.defaultAuthor
	}
	if err := draft.Validate(); err != nil {
		// required fields are checked above, so only the length rule can fail here
		return nil, invalid(ErrTitleLong)
	}

	wanted := slug.Derive(in.Title)
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	for i := range existing {
		if slug.Derive(existing[i].Title) == wanted {
			return nil, invalid(ErrSlugTaken)
		}
	}

	if img != nil {
		if s.uploader == nil {
			return nil, fmt.Errorf("%w: no image host configured", ErrUpload)
		}
		url, err := s.uploader.Upload(ctx, *img)
		if err != nil {
			log.Errorf("[Article] Image upload failed for %q: %v", in.Title, err)
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		if url == "" {
			return nil, fmt.Errorf("%w: %v", ErrUpload, imagehost.ErrMissingURL)
		}
		draft.ImageURL = &url
	}

	draft.UploadDate, draft.UploadTime = localtime.Now(s.clock)

	saved, err := s.repo.Insert(ctx, draft)
	if err != nil {
		log.Errorf("[Article] Insert failed for %q: %v", in.Title, err)
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if saved == nil {
		log.Warnf("[Article] Insert for %q returned no row", in.Title)
		return nil, ErrSaveFailed
	}

	saved.Slug = wanted
	log.Infof("[Article] Created article %d (%s)", saved.ID, saved.Slug)
	return saved, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// prepareImage checks the image and hands on a body that can be rewound, which
// S3 needs to hash the payload before sending it.
func prepareImage(in *ImageInput) (*imagehost.Image, error) {
	body, err := seekable(in.Body)
	if err != nil {
		return nil, err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	contentType, err := upload.ValidateImage(in.ContentType, in.Size, head[:n])
	if err != nil {
		return nil, invalid(err)
	}

	return &imagehost.Image{
		Filename:    in.Filename,
		ContentType: contentType,
		Size:        in.Size,
		Body:        body,
	}, nil
}

// seekable returns r itself when it can seek, otherwise an in-memory copy
// bounded by the upload limit.
func seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, upload.MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if int64(len(data)) > upload.MaxImageBytes {
		return nil, invalid(upload.ErrImageTooLarge)
	}
	return bytes.NewReader(data), nil
}

// List returns all articles in recency order with slugs attached.
// Store failures are logged and yield an empty list.
func (s *Service) List(ctx context.Context) []models.Article {
	articles, err := s.repo.List(ctx)
	if err != nil {
		log.Errorf("[Article] Failed to fetch articles: %v", err)
		return []models.Article{}
	}
	for i := range articles {
		articles[i].WithSlug()
	}
	return articles
}

// FindBySlug scans the full list and returns the first article whose derived
// slug matches. ErrNotFound and ErrStore are kept apart.
func (s *Service) FindBySlug(ctx context.Context, want string) (*models.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		log.Errorf("[Article] Failed to fetch articles for %q: %v", want, err)
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	for i := range articles {
		if slug.Derive(articles[i].Title) == want {
			found := articles[i]
			return found.WithSlug(), nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes an article by id. Anonymous callers get (false, nil) and
// nothing is touched.
func (s *Service) Delete(ctx context.Context, sess usercontext.UserContext, id uint64) (bool, error) {
	if !sess.IsLoggedIn {
		log.Warnf("[Article] Ignoring delete of %d from anonymous session", id)
		return false, nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Errorf("[Article] Failed to delete article %d: %v", id, err)
		return false, fmt.Errorf("%w: %v", ErrStore, err)
	}
	log.Infof("[Article] User %d deleted article %d", sess.UserID, id)
	return true, nil
}

// Prepend puts a freshly created article at the head of an already loaded list.
func Prepend(list []models.Article, a models.Article) []models.Article {
	out := make([]models.Article, 0, len(list)+1)
	out = append(out, a)
	return append(out, list...)
}
