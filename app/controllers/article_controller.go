package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/internal/pkg/article"
	"github.com/harsoyo/notaris-web/internal/pkg/constants"
	"github.com/harsoyo/notaris-web/internal/pkg/flash"
	"github.com/harsoyo/notaris-web/internal/pkg/seo"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
)

const (
	msgArticleCreated = "Artikel berhasil ditambahkan"
	msgArticleDeleted = "Artikel berhasil dihapus"
)

// ArticleController serves the public article pages and the staff create and delete forms.
type ArticleController struct {
	articles *article.Service
}

func NewArticleController(svc *article.Service) *ArticleController {
	return &ArticleController{articles: svc}
}

// articleForm echoes submitted values back into the create form.
type articleForm struct {
	Title       string
	Description string
	Body        string
	Author      string
}

// HandleIndex lists all articles. ?search= filters on title and description,
// ?created= keeps a just-created article on top.
func (ac *ArticleController) HandleIndex(c *fiber.Ctx) error {
	return ac.renderIndex(c, articleForm{})
}

func (ac *ArticleController) renderIndex(c *fiber.Ctx, form articleForm) error {
	list := ac.articles.List(c.UserContext())
	if id, err := strconv.ParseUint(c.Query("created"), 10, 64); err == nil && id > 0 {
		list = pinArticle(list, id)
	}
	search := strings.TrimSpace(c.Query("search"))
	if search != "" {
		list = filterArticles(list, search)
	}

	layout := newLayout(c, "articles", seo.ArticlesPage(list))
	return renderPage(c, "articles/index", layout, fiber.Map{
		"Articles":      list,
		"Search":        search,
		"CanEdit":       layout.FromProtected,
		"Form":          form,
		"DefaultAuthor": models.DefaultAuthor,
	})
}

// pinArticle moves the article with the given id to the head of the list.
// A new article has no update date and would otherwise sort below updated ones.
func pinArticle(list []models.Article, id uint64) []models.Article {
	for i := range list {
		if list[i].ID != id {
			continue
		}
		rest := make([]models.Article, 0, len(list)-1)
		rest = append(rest, list[:i]...)
		rest = append(rest, list[i+1:]...)
		return article.Prepend(rest, list[i])
	}
	return list
}

func filterArticles(list []models.Article, search string) []models.Article {
	needle := strings.ToLower(search)
	out := make([]models.Article, 0, len(list))
	for _, a := range list {
		if strings.Contains(strings.ToLower(a.Title), needle) || strings.Contains(strings.ToLower(a.Description), needle) {
			out = append(out, a)
		}
	}
	return out
}

// HandleShow renders one article addressed by its derived slug.
func (ac *ArticleController) HandleShow(c *fiber.Ctx) error {
	found, err := ac.articles.FindBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return ac.renderLookupError(c, err)
	}
	return ac.renderShow(c, found)
}

func (ac *ArticleController) renderShow(c *fiber.Ctx, a *models.Article) error {
	layout := newLayout(c, "articles", seo.ArticleDetailPage(a))
	return renderPage(c, "articles/show", layout, fiber.Map{
		"Article": a,
		"CanEdit": layout.FromProtected,
	})
}

func (ac *ArticleController) renderLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, article.ErrNotFound) {
		c.Status(fiber.StatusNotFound)
		return renderPage(c, "errors/not_found", newLayout(c, "articles", seo.NotFoundPage()), fiber.Map{
			"Heading": article.ErrNotFound.Error(),
			"Message": "Artikel yang Anda cari mungkin sudah dihapus atau alamatnya berubah.",
		})
	}
	c.Status(fiber.StatusServiceUnavailable)
	return renderPage(c, "errors/not_found", newLayout(c, "articles", seo.NotFoundPage()), fiber.Map{
		"Heading": "Artikel tidak dapat dimuat",
		"Message": "Terjadi gangguan saat memuat artikel. Silakan muat ulang halaman.",
	})
}

type createWorkflow struct {
	c       *fiber.Ctx
	ac      *ArticleController
	userCtx usercontext.UserContext
	form    articleForm
}

var errCreateResponseHandled = errors.New("create response already handled")

// HandleCreate accepts the multipart article form. HTMX callers get the new
// card fragment to insert at the top of the list.
func (ac *ArticleController) HandleCreate(c *fiber.Ctx) error {
	w := &createWorkflow{c: c, ac: ac, userCtx: usercontext.GetUserContext(c)}
	if err := w.run(); err != nil && !errors.Is(err, errCreateResponseHandled) {
		return err
	}
	return nil
}

func (w *createWorkflow) run() error {
	w.form = articleForm{
		Title:       w.c.FormValue("title"),
		Description: w.c.FormValue("description"),
		Body:        w.c.FormValue("body"),
		Author:      w.c.FormValue("author"),
	}
	in := article.CreateInput{
		Title:       w.form.Title,
		Description: w.form.Description,
		Body:        w.form.Body,
		Author:      w.form.Author,
	}

	if file := w.imageFile(); file != nil {
		src, err := file.Open()
		if err != nil {
			fiberlog.Errorf("[Article] Failed to open uploaded image: %v", err)
			return w.fail(fiber.StatusBadRequest, article.ErrUpload.Error())
		}
		defer src.Close()
		in.Image = &article.ImageInput{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Body:        src,
		}
	}

	created, err := w.ac.articles.Create(w.c.UserContext(), w.userCtx, in)
	if err != nil {
		return w.fail(createErrorStatus(err), article.Message(err))
	}

	return w.succeed(created)
}

func (w *createWorkflow) imageFile() *multipart.FileHeader {
	form, err := w.c.MultipartForm()
	if err != nil {
		// urlencoded submissions carry no files at all
		return nil
	}
	files := form.File["image"]
	if len(files) == 0 || (files[0].Size == 0 && files[0].Filename == "") {
		return nil
	}
	return files[0]
}

func createErrorStatus(err error) int {
	switch {
	case errors.Is(err, article.ErrNotAuthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, article.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, article.ErrUpload):
		return fiber.StatusBadGateway
	case errors.Is(err, article.ErrStore):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// fail answers HTMX with an error fragment for the form and plain requests
// with the list page, keeping the submitted values in the form.
func (w *createWorkflow) fail(status int, message string) error {
	if isHTMXRequest(w.c) {
		w.c.Set("HX-Retarget", constants.ArticleFormErrorsTarget)
		w.c.Set("HX-Reswap", "innerHTML")
		return markCreateHandled(w.c.Status(status).Render("articles/form_error", fiber.Map{"Message": message}))
	}
	flash.Error(w.c, message)
	w.c.Status(status)
	return markCreateHandled(w.ac.renderIndex(w.c, w.form))
}

func (w *createWorkflow) succeed(created *models.Article) error {
	if isHTMXRequest(w.c) {
		w.c.Set("HX-Trigger", "article-created")
		return markCreateHandled(w.c.Status(fiber.StatusCreated).Render("articles/card", fiber.Map{
			"Article": created,
			"CanEdit": true,
			"IsNew":   true,
		}))
	}
	target := fmt.Sprintf("%s?created=%d", constants.ArticlesRoute, created.ID)
	return markCreateHandled(flash.RedirectWithSuccess(w.c, target, msgArticleCreated))
}

func markCreateHandled(err error) error {
	if err != nil {
		return err
	}
	return errCreateResponseHandled
}

// HandleConfirmDelete asks for explicit confirmation before deleting.
func (ac *ArticleController) HandleConfirmDelete(c *fiber.Ctx) error {
	found, err := ac.articles.FindBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return ac.renderLookupError(c, err)
	}
	layout := newLayout(c, "articles", seo.ArticleDetailPage(found))
	return renderPage(c, "articles/confirm_delete", layout, fiber.Map{
		"Article": found,
	})
}

// HandleDelete removes the article once the form carries confirm=yes.
func (ac *ArticleController) HandleDelete(c *fiber.Ctx) error {
	slug := c.FormValue("slug")
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).SendString("ID artikel tidak valid")
	}

	if c.FormValue("confirm") != "yes" {
		if slug != "" {
			return c.Redirect(constants.ArticlesRoute+"/"+slug+"/delete", fiber.StatusSeeOther)
		}
		return c.Redirect(constants.ArticlesRoute, fiber.StatusSeeOther)
	}

	deleted, err := ac.articles.Delete(c.UserContext(), usercontext.GetUserContext(c), id)
	if err != nil {
		return ac.renderDeleteFailure(c, slug, article.Message(err))
	}
	if !deleted {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}

	if isHTMXRequest(c) {
		flash.Success(c, msgArticleDeleted)
		c.Set("HX-Redirect", constants.ArticlesRoute)
		return c.SendStatus(fiber.StatusOK)
	}
	return flash.RedirectWithSuccess(c, constants.ArticlesRoute, msgArticleDeleted)
}

// renderDeleteFailure shows the error on the article page without navigating away.
func (ac *ArticleController) renderDeleteFailure(c *fiber.Ctx, slug, message string) error {
	flash.Error(c, message)
	c.Status(fiber.StatusInternalServerError)

	if slug != "" {
		if found, err := ac.articles.FindBySlug(c.UserContext(), slug); err == nil {
			return ac.renderShow(c, found)
		}
	}
	return ac.renderIndex(c, articleForm{})
}
