package apiv1

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/harsoyo/notaris-web/internal/pkg/article"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
)

// APIServer implements the ServerInterface
type APIServer struct {
	articles *article.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(svc *article.Service) *APIServer {
	return &APIServer{articles: svc}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// ListArticles returns every article in recency order. Store failures
// degrade to an empty list, like the HTML listing.
func (s *APIServer) ListArticles(c *fiber.Ctx, params ListArticlesParams) error {
	list := s.articles.List(c.UserContext())

	var needle string
	if params.Search != nil {
		needle = strings.ToLower(strings.TrimSpace(*params.Search))
	}

	out := ArticleList{Articles: make([]Article, 0, len(list))}
	for i := range list {
		a := &list[i]
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Description), needle) {
			continue
		}
		out.Articles = append(out.Articles, toArticle(a))
	}
	out.Total = len(out.Articles)
	return c.JSON(out)
}

// GetArticle looks an article up by its derived slug.
func (s *APIServer) GetArticle(c *fiber.Ctx, slug string) error {
	found, err := s.articles.FindBySlug(c.UserContext(), slug)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toArticle(found))
}

// CreateArticle accepts JSON or multipart/form-data; only the multipart form can carry an image.
func (s *APIServer) CreateArticle(c *fiber.Ctx) error {
	in, cleanup, err := createInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Error{Error: "bad_request", Message: err.Error()})
	}
	defer cleanup()

	created, err := s.articles.Create(c.UserContext(), usercontext.GetUserContext(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toArticle(created))
}

func createInput(c *fiber.Ctx) (article.CreateInput, func(), error) {
	noop := func() {}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var body CreateArticleJSONBody
		if err := c.BodyParser(&body); err != nil {
			return article.CreateInput{}, noop, errors.New("invalid JSON body")
		}
		return article.CreateInput{
			Title:       body.Title,
			Description: body.Description,
			Body:        body.Body,
			Author:      body.Author,
		}, noop, nil
	}

	in := article.CreateInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Body:        c.FormValue("body"),
		Author:      c.FormValue("author"),
	}

	form, err := c.MultipartForm()
	if err != nil {
		return in, noop, nil
	}
	files := form.File["image"]
	if len(files) == 0 {
		return in, noop, nil
	}
	src, err := files[0].Open()
	if err != nil {
		return in, noop, errors.New("unable to read image")
	}
	in.Image = &article.ImageInput{
		Filename:    files[0].Filename,
		ContentType: files[0].Header.Get("Content-Type"),
		Size:        files[0].Size,
		Body:        src,
	}
	return in, func() { _ = src.Close() }, nil
}

// DeleteArticle removes an article by id. Unknown ids succeed silently.
func (s *APIServer) DeleteArticle(c *fiber.Ctx, id uint64) error {
	deleted, err := s.articles.Delete(c.UserContext(), usercontext.GetUserContext(c), id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return respondError(c, article.ErrNotAuthenticated)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "internal_server_error"
	switch {
	case errors.Is(err, article.ErrNotAuthenticated):
		status, code = fiber.StatusUnauthorized, "unauthorized"
	case errors.Is(err, article.ErrValidation):
		status, code = fiber.StatusUnprocessableEntity, "validation_failed"
	case errors.Is(err, article.ErrNotFound):
		status, code = fiber.StatusNotFound, "not_found"
	case errors.Is(err, article.ErrUpload):
		status, code = fiber.StatusBadGateway, "upload_failed"
	case errors.Is(err, article.ErrSaveFailed):
		status, code = fiber.StatusInternalServerError, "save_failed"
	case errors.Is(err, article.ErrStore):
		status, code = fiber.StatusServiceUnavailable, "store_unavailable"
	}
	return c.Status(status).JSON(Error{Error: code, Message: article.Message(err)})
}

var _ ServerInterface = (*APIServer)(nil)
