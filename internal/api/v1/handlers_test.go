package apiv1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/app/repository"
	"github.com/harsoyo/notaris-web/internal/pkg/article"
	"github.com/harsoyo/notaris-web/internal/pkg/middleware"
	"github.com/harsoyo/notaris-web/internal/pkg/session"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
)

func strPtr(s string) *string { return &s }

func newAPIApp(t *testing.T, seed ...models.Article) (*fiber.App, *repository.MemoryArticleRepository) {
	t.Helper()

	session.NewMemoryStore()
	repo := repository.NewMemoryArticleRepository(seed...)

	app := fiber.New()
	app.Use(middleware.UserContextMiddleware)
	app.Get("/test/login", func(c *fiber.Ctx) error {
		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			return err
		}
		sess.Set(usercontext.KeyUserID, uint(7))
		sess.Set(usercontext.KeyUsername, "staf")
		if err := sess.Save(); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1 := app.Group("/api/v1")
	RegisterHandlersWithOptions(v1, NewAPIServer(article.NewService(repo, nil)), FiberServerOptions{
		WriteMiddlewares: []fiber.Handler{middleware.RequireAPISessionAuth},
	})
	return app, repo
}

func loginCookies(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test/login", nil))
	require.NoError(t, err)
	return resp.Cookies()
}

func call(t *testing.T, app *fiber.App, req *http.Request, cookies []*http.Cookie, out interface{}) *http.Response {
	t.Helper()
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func seed() []models.Article {
	return []models.Article{
		{ID: 1, Title: "Akta Jual Beli", Description: "Panduan AJB", Body: "<p>AJB</p>", UploadDate: "2024-01-10", UploadTime: "09:00:00"},
		{ID: 2, Title: "Pendirian PT", Description: "Syarat pendirian", Body: "<p>PT</p>", Author: "Staf Kantor", UploadDate: "2024-02-01", UploadTime: "10:00:00", UpdateDate: strPtr("2024-03-01")},
	}
}

func TestPing(t *testing.T) {
	app, _ := newAPIApp(t)

	var pong Pong
	resp := call(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil), nil, &pong)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", pong.Ping)
}

func TestListArticles(t *testing.T) {
	app, _ := newAPIApp(t, seed()...)

	var list ArticleList
	resp := call(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil), nil, &list)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "pendirian-pt", list.Articles[0].Slug)
	assert.Equal(t, "Staf Kantor", list.Articles[0].Author)
	assert.Equal(t, models.DefaultAuthor, list.Articles[1].Author)
}

func TestListArticlesSearch(t *testing.T) {
	app, _ := newAPIApp(t, seed()...)

	var list ArticleList
	call(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/articles?search=syarat", nil), nil, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, uint64(2), list.Articles[0].ID)
}

func TestGetArticle(t *testing.T) {
	app, _ := newAPIApp(t, seed()...)

	var a Article
	resp := call(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/articles/akta-jual-beli", nil), nil, &a)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Akta Jual Beli", a.Title)

	var apiErr Error
	resp = call(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/articles/tidak-ada", nil), nil, &apiErr)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", apiErr.Error)
}

func TestCreateArticleRequiresSession(t *testing.T) {
	app, repo := newAPIApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", strings.NewReader(`{"title":"A","description":"B","body":"C"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp := call(t, app, req, nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	list, _ := repo.List(context.Background())
	assert.Empty(t, list)
}

func TestCreateArticleJSON(t *testing.T) {
	app, repo := newAPIApp(t)
	cookies := loginCookies(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", strings.NewReader(`{"title":"Waris dan Hibah","description":"Pembagian waris","body":"<p>isi</p>"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	var created Article
	resp := call(t, app, req, cookies, &created)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "waris-dan-hibah", created.Slug)
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.ImageURL)

	list, _ := repo.List(context.Background())
	assert.Len(t, list, 1)
}

func TestCreateArticleValidation(t *testing.T) {
	app, _ := newAPIApp(t, seed()...)
	cookies := loginCookies(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", strings.NewReader(`{"title":"Akta Jual Beli","description":"lagi","body":"x"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	var apiErr Error
	resp := call(t, app, req, cookies, &apiErr)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_failed", apiErr.Error)
	assert.Equal(t, article.ErrSlugTaken.Error(), apiErr.Message)
}

func TestCreateArticleBadJSON(t *testing.T) {
	app, _ := newAPIApp(t)
	cookies := loginCookies(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp := call(t, app, req, cookies, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteArticle(t *testing.T) {
	app, repo := newAPIApp(t, seed()...)
	cookies := loginCookies(t, app)

	resp := call(t, app, httptest.NewRequest(http.MethodDelete, "/api/v1/articles/1", nil), cookies, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// unknown ids are not an error
	resp = call(t, app, httptest.NewRequest(http.MethodDelete, "/api/v1/articles/99", nil), cookies, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	list, _ := repo.List(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, uint64(2), list[0].ID)
}

func TestDeleteArticleAnonymous(t *testing.T) {
	app, repo := newAPIApp(t, seed()...)

	resp := call(t, app, httptest.NewRequest(http.MethodDelete, "/api/v1/articles/1", nil), nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	list, _ := repo.List(context.Background())
	assert.Len(t, list, 2)
}

func TestDeleteArticleBadID(t *testing.T) {
	app, _ := newAPIApp(t, seed()...)
	cookies := loginCookies(t, app)

	resp := call(t, app, httptest.NewRequest(http.MethodDelete, "/api/v1/articles/akta", nil), cookies, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
