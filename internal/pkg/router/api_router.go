package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/harsoyo/notaris-web/internal/api/v1"
	"github.com/harsoyo/notaris-web/internal/pkg/apidoc"
	"github.com/harsoyo/notaris-web/internal/pkg/middleware"
)

const apiV1Prefix = "/api/v1"

type ApiRouter struct {
	deps *Deps
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	if h.deps.APIDoc != nil {
		validate, err := apidoc.RequestValidator(h.deps.APIDoc, apiV1Prefix)
		if err != nil {
			fiberlog.Errorf("[API] Request validation disabled: %v", err)
		} else {
			v1.Use(validate)
		}
	}

	apiServer := apiv1.NewAPIServer(h.deps.Articles)
	apiv1.RegisterHandlersWithOptions(v1, apiServer, apiv1.FiberServerOptions{
		WriteMiddlewares: []fiber.Handler{middleware.RequireAPISessionAuth},
	})

	api.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "unknown API route",
		})
	})
}

func NewApiRouter(deps *Deps) *ApiRouter {
	return &ApiRouter{deps: deps}
}
