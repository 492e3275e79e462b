package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harsoyo/notaris-web/app/controllers"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// API routes live in ApiRouter (internal/pkg/router/api_router.go)
	app.Get("/healthz", controllers.HandleHealthz)
	app.Get("/sitemap.xml", h.articles.HandleSitemap)

	// legacy paths of the old site
	app.Get("/artikel", func(c *fiber.Ctx) error {
		return c.Redirect("/articles", fiber.StatusMovedPermanently)
	})
	app.Get("/artikel/:slug", func(c *fiber.Ctx) error {
		return c.Redirect("/articles/"+c.Params("slug"), fiber.StatusMovedPermanently)
	})
}
