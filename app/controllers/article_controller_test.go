package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/app/repository"
	"github.com/harsoyo/notaris-web/internal/pkg/article"
	"github.com/harsoyo/notaris-web/internal/pkg/imagehost"
	"github.com/harsoyo/notaris-web/internal/pkg/middleware"
	"github.com/harsoyo/notaris-web/internal/pkg/session"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
	"github.com/harsoyo/notaris-web/views"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")

type fakeUploader struct {
	calls int
	url   string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, img imagehost.Image) (string, error) {
	f.calls++
	_, _ = io.ReadAll(img.Body)
	return f.url, f.err
}

type testEnv struct {
	app      *fiber.App
	repo     *repository.MemoryArticleRepository
	uploader *fakeUploader
}

func strPtr(s string) *string { return &s }

func newTestEnv(t *testing.T, seed ...models.Article) *testEnv {
	t.Helper()

	session.NewMemoryStore()
	repo := repository.NewMemoryArticleRepository(seed...)
	up := &fakeUploader{url: "https://res.cloudinary.com/demo/image/upload/v1/kantor.png"}
	ac := NewArticleController(article.NewService(repo, up))

	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	app.Use(middleware.UserContextMiddleware)

	app.Get("/test/login", func(c *fiber.Ctx) error {
		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			return err
		}
		sess.Set(usercontext.KeyUserID, uint(1))
		sess.Set(usercontext.KeyUsername, "harsoyo")
		if err := sess.Save(); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Get("/articles", ac.HandleIndex)
	app.Post("/articles", middleware.RequireAuth, ac.HandleCreate)
	app.Get("/articles/:slug", ac.HandleShow)
	app.Get("/articles/:slug/delete", middleware.RequireAuth, ac.HandleConfirmDelete)
	app.Post("/articles/:id/delete", middleware.RequireAuth, ac.HandleDelete)
	app.Get("/sitemap.xml", ac.HandleSitemap)

	return &testEnv{app: app, repo: repo, uploader: up}
}

func (e *testEnv) login(t *testing.T) []*http.Cookie {
	t.Helper()
	resp, err := e.app.Test(httptest.NewRequest(http.MethodGet, "/test/login", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return resp.Cookies()
}

func (e *testEnv) do(t *testing.T, req *http.Request, cookies []*http.Cookie) (*http.Response, string) {
	t.Helper()
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return req
}

func multipartRequest(t *testing.T, target string, values map[string]string, fileName, fileType string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+fileName+`"`)
		h.Set("Content-Type", fileType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"title":       "Prosedur Balik Nama Sertifikat",
		"description": "Langkah balik nama di Tegal",
		"body":        "<p>Isi artikel</p>",
	}
}

func seedArticles() []models.Article {
	return []models.Article{
		{ID: 1, Title: "Akta Jual Beli", Description: "Panduan AJB", Body: "<p>AJB</p>", UploadDate: "2024-01-10", UploadTime: "09:00:00"},
		{ID: 2, Title: "Pendirian PT", Description: "Syarat pendirian", Body: "<p>PT</p>", UploadDate: "2024-02-01", UploadTime: "10:00:00", UpdateDate: strPtr("2024-03-01"), UpdateTime: strPtr("08:00:00")},
	}
}

func TestIndexEmptyState(t *testing.T) {
	e := newTestEnv(t)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/articles", nil), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Belum Ada Artikel")
	assert.NotContains(t, body, `id="article-form"`)
}

func TestIndexListsRecentFirstAndShowsFormToStaff(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)
	cookies := e.login(t)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/articles", nil), cookies)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="article-form"`)
	assert.Contains(t, body, "CollectionPage")

	pt := strings.Index(body, "Pendirian PT")
	ajb := strings.Index(body, "Akta Jual Beli")
	require.True(t, pt >= 0 && ajb >= 0)
	assert.Less(t, pt, ajb)
}

func TestIndexSearchFilters(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)

	_, body := e.do(t, httptest.NewRequest(http.MethodGet, "/articles?search=ajb", nil), nil)
	assert.Contains(t, body, "/articles/akta-jual-beli")
	assert.NotContains(t, body, "/articles/pendirian-pt")
}

func TestShowBySlug(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/articles/akta-jual-beli", nil), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Akta Jual Beli")
	assert.Contains(t, body, models.DefaultAuthor)
	assert.NotContains(t, body, "/articles/akta-jual-beli/delete")
}

func TestShowUnknownSlug(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/articles/tidak-ada", nil), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Artikel tidak ditemukan")
}

func TestCreateRequiresLogin(t *testing.T) {
	e := newTestEnv(t)

	resp, _ := e.do(t, multipartRequest(t, "/articles", validFields(), "", "", nil), nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	list, _ := e.repo.List(context.Background())
	assert.Empty(t, list)
}

func TestCreateHTMXReturnsCard(t *testing.T) {
	e := newTestEnv(t)
	cookies := e.login(t)

	req := multipartRequest(t, "/articles", validFields(), "", "", nil)
	req.Header.Set("HX-Request", "true")
	resp, body := e.do(t, req, cookies)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "article-created", resp.Header.Get("HX-Trigger"))
	assert.Contains(t, body, "/articles/prosedur-balik-nama-sertifikat")
	assert.NotContains(t, body, "<html")

	list, _ := e.repo.List(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, models.DefaultAuthor, list[0].Author)
	assert.NotEmpty(t, list[0].UploadDate)
	assert.Zero(t, e.uploader.calls)
}

func TestCreateHTMXValidationError(t *testing.T) {
	e := newTestEnv(t)
	cookies := e.login(t)

	fields := validFields()
	fields["title"] = "   "
	req := multipartRequest(t, "/articles", fields, "", "", nil)
	req.Header.Set("HX-Request", "true")
	resp, body := e.do(t, req, cookies)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "#article-form-errors", resp.Header.Get("HX-Retarget"))
	assert.Contains(t, body, "harus diisi")

	list, _ := e.repo.List(context.Background())
	assert.Empty(t, list)
}

func TestCreateFormErrorKeepsValues(t *testing.T) {
	e := newTestEnv(t)
	cookies := e.login(t)

	resp, body := e.do(t, formRequest("/articles", url.Values{
		"title":       {"Hibah Tanah"},
		"description": {"Deskripsi yang harus tetap ada"},
		"body":        {""},
	}), cookies)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Deskripsi yang harus tetap ada")
	assert.Contains(t, body, "harus diisi")
}

func TestCreateRedirectsWithoutHTMX(t *testing.T) {
	e := newTestEnv(t)
	cookies := e.login(t)

	resp, _ := e.do(t, multipartRequest(t, "/articles", validFields(), "", "", nil), cookies)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/articles?created=1", resp.Header.Get("Location"))
}

func TestCreateWithoutHTMXListsNewArticleFirst(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)
	cookies := e.login(t)

	resp, _ := e.do(t, multipartRequest(t, "/articles", validFields(), "", "", nil), cookies)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.Equal(t, "/articles?created=3", location)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, location, nil), cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	start := strings.Index(body, `id="article-list"`)
	require.GreaterOrEqual(t, start, 0)
	listing := body[start:]

	created := strings.Index(listing, "Prosedur Balik Nama Sertifikat")
	updated := strings.Index(listing, "Pendirian PT")
	older := strings.Index(listing, "Akta Jual Beli")
	require.True(t, created >= 0 && updated >= 0 && older >= 0)
	assert.Less(t, created, updated)
	assert.Less(t, updated, older)
}

func TestPinArticle(t *testing.T) {
	list := seedArticles()
	models.SortByRecency(list)

	pinned := pinArticle(list, 1)
	require.Len(t, pinned, 2)
	assert.Equal(t, uint64(1), pinned[0].ID)
	assert.Equal(t, uint64(2), pinned[1].ID)

	assert.Equal(t, list, pinArticle(list, 99))
}

func TestCreateWithImageUploadsOnce(t *testing.T) {
	e := newTestEnv(t)
	cookies := e.login(t)

	req := multipartRequest(t, "/articles", validFields(), "kantor.png", "image/png", pngHeader)
	req.Header.Set("HX-Request", "true")
	resp, body := e.do(t, req, cookies)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, e.uploader.calls)
	assert.Contains(t, body, e.uploader.url)
}

func TestCreateRejectsNonImageBeforeUpload(t *testing.T) {
	e := newTestEnv(t)
	cookies := e.login(t)

	req := multipartRequest(t, "/articles", validFields(), "notes.txt", "text/plain", []byte("hello"))
	req.Header.Set("HX-Request", "true")
	resp, body := e.do(t, req, cookies)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "File harus berupa gambar")
	assert.Zero(t, e.uploader.calls)
}

func TestCreateUploadFailureIsBadGateway(t *testing.T) {
	e := newTestEnv(t)
	e.uploader.err = errors.New("preset not found")
	cookies := e.login(t)

	req := multipartRequest(t, "/articles", validFields(), "kantor.png", "image/png", pngHeader)
	req.Header.Set("HX-Request", "true")
	resp, body := e.do(t, req, cookies)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Gagal mengunggah gambar")

	list, _ := e.repo.List(context.Background())
	assert.Empty(t, list)
}

func TestConfirmDeletePage(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)
	cookies := e.login(t)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/articles/akta-jual-beli/delete", nil), cookies)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Apakah Anda yakin ingin menghapus artikel ini?")
	assert.Contains(t, body, `action="/articles/1/delete"`)
}

func TestDeleteWithoutConfirmGoesBackToConfirmation(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)
	cookies := e.login(t)

	resp, _ := e.do(t, formRequest("/articles/1/delete", url.Values{"slug": {"akta-jual-beli"}}), cookies)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/articles/akta-jual-beli/delete", resp.Header.Get("Location"))

	list, _ := e.repo.List(context.Background())
	assert.Len(t, list, 2)
}

func TestDeleteConfirmed(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)
	cookies := e.login(t)

	resp, _ := e.do(t, formRequest("/articles/1/delete", url.Values{
		"slug":    {"akta-jual-beli"},
		"confirm": {"yes"},
	}), cookies)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/articles", resp.Header.Get("Location"))

	list, _ := e.repo.List(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, uint64(2), list[0].ID)
}

func TestDeleteAnonymousRedirectsToLogin(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)

	resp, _ := e.do(t, formRequest("/articles/1/delete", url.Values{"confirm": {"yes"}}), nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	list, _ := e.repo.List(context.Background())
	assert.Len(t, list, 2)
}

func TestDeleteRejectsBadID(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)
	cookies := e.login(t)

	resp, _ := e.do(t, formRequest("/articles/abc/delete", url.Values{"confirm": {"yes"}}), cookies)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSitemapListsArticles(t *testing.T) {
	e := newTestEnv(t, seedArticles()...)

	resp, body := e.do(t, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
	assert.Contains(t, body, "/articles/pendirian-pt</loc>")
	assert.Contains(t, body, "<lastmod>2024-03-01</lastmod>")
}

func TestCreateErrorStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusUnauthorized, createErrorStatus(article.ErrNotAuthenticated))
	assert.Equal(t, fiber.StatusUnprocessableEntity, createErrorStatus(&article.ValidationError{Reason: article.ErrSlugTaken}))
	assert.Equal(t, fiber.StatusBadGateway, createErrorStatus(article.ErrUpload))
	assert.Equal(t, fiber.StatusInternalServerError, createErrorStatus(article.ErrSaveFailed))
	assert.Equal(t, fiber.StatusServiceUnavailable, createErrorStatus(fmt.Errorf("%w: timeout", article.ErrStore)))
}
