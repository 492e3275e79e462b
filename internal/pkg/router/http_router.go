package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harsoyo/notaris-web/app/controllers"
	"github.com/harsoyo/notaris-web/internal/pkg/middleware"
	"github.com/harsoyo/notaris-web/internal/pkg/session"
)

type HttpRouter struct {
	articles *controllers.ArticleController
	auth     *controllers.AuthController
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// keep a store installed by tests
	if session.GetSessionStore() == nil {
		session.NewSessionStore()
	}

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter(deps *Deps) *HttpRouter {
	return &HttpRouter{
		articles: controllers.NewArticleController(deps.Articles),
		auth:     controllers.NewAuthController(deps.Repos.User, deps.Captcha),
	}
}
