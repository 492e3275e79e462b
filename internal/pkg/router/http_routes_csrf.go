package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/harsoyo/notaris-web/app/controllers"
	"github.com/harsoyo/notaris-web/internal/pkg/env"
	"github.com/harsoyo/notaris-web/internal/pkg/middleware"
)

func csrfConfig() csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}
}

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	group := app.Group("", csrf.New(csrfConfig()))
	group.Get("/", controllers.HandleHome)
	group.Get("/about", controllers.HandleAbout)
	group.Get("/services", controllers.HandleServices)

	// Articles
	group.Get("/articles", h.articles.HandleIndex)
	group.Post("/articles", middleware.RequireAuth, h.articles.HandleCreate)
	group.Get("/articles/:slug", h.articles.HandleShow)
	group.Get("/articles/:slug/delete", middleware.RequireAuth, h.articles.HandleConfirmDelete)
	group.Post("/articles/:id/delete", middleware.RequireAuth, h.articles.HandleDelete)

	// Auth
	group.Get("/login", middleware.RedirectIfLoggedIn, h.auth.HandleLoginForm)
	group.Post("/login", middleware.RedirectIfLoggedIn, h.auth.HandleLogin)
	group.Post("/logout", middleware.RequireAuth, h.auth.HandleLogout)
}
