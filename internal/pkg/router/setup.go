package router

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/harsoyo/notaris-web/app/controllers"
	"github.com/harsoyo/notaris-web/app/repository"
	"github.com/harsoyo/notaris-web/internal/pkg/article"
	"github.com/harsoyo/notaris-web/internal/pkg/database"
	"github.com/harsoyo/notaris-web/internal/pkg/env"
	"github.com/harsoyo/notaris-web/internal/pkg/hcaptcha"
	"github.com/harsoyo/notaris-web/internal/pkg/imagehost"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Deps are the shared services the routers hand to their controllers.
type Deps struct {
	Repos    *repository.Repositories
	Articles *article.Service

	// APIDoc enables request validation on /api/v1 when set.
	APIDoc  *openapi3.T
	Captcha *hcaptcha.Verifier
}

// NewDeps wires repositories for the configured DB_DRIVER and the image host.
// A missing image host only disables image uploads.
func NewDeps(ctx context.Context, doc *openapi3.T) (*Deps, error) {
	var factory *repository.Factory
	if database.Driver() == database.DriverMemory {
		factory = repository.NewFactoryWith(repository.NewMemoryRepositories())
	} else {
		db := database.GetDB()
		if db == nil {
			return nil, fmt.Errorf("database not initialized for driver %s", database.Driver())
		}
		factory = repository.NewFactory(db)
	}

	var uploader imagehost.Uploader
	cfg, err := imagehost.LoadConfig()
	if err != nil {
		fiberlog.Warnf("[Router] Image uploads disabled: %v", err)
	} else if uploader, err = imagehost.New(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to set up image host: %w", err)
	}

	svc := article.NewService(factory.GetArticleRepository(), uploader,
		article.WithDefaultAuthor(env.GetEnv("ARTICLE_DEFAULT_AUTHOR", "")),
	)
	return &Deps{Repos: factory.GetRepositories(), Articles: svc, APIDoc: doc, Captcha: hcaptcha.FromEnv()}, nil
}

func InstallRouter(app *fiber.App, deps *Deps) {
	// HttpRouter goes first: it installs the session store and the user
	// context middleware the API write routes rely on.
	setup(app, NewHttpRouter(deps), NewApiRouter(deps))

	app.Use(controllers.HandleNotFound)
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
