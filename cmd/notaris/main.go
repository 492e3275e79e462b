package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/harsoyo/notaris-web/internal/pkg/apidoc"
	"github.com/harsoyo/notaris-web/internal/pkg/cache"
	"github.com/harsoyo/notaris-web/internal/pkg/database"
	"github.com/harsoyo/notaris-web/internal/pkg/env"
	"github.com/harsoyo/notaris-web/internal/pkg/router"
	"github.com/harsoyo/notaris-web/views"
)

// 5 MB image plus the text fields
const bodyLimit = 8 * 1024 * 1024

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	if cache.Enabled() {
		cache.SetupCache()
	}

	// Define possible base paths
	basePaths := []string{
		"./",     // Current directory
		"../../", // From cmd/notaris to project root
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:     views.NewEngine(),
		BodyLimit: bodyLimit,
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "change-me"),
		},
	}), monitor.New(monitor.Config{Title: "Notaris Harsoyo Metrics"}))

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	specPath := basePath + "public/docs/v1/openapi.yml"
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: specPath,
		Path:     "v1",
		Title:    "Notaris Harsoyo API",
	}
	app.Use(swagger.New(openAPICfg))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	doc, err := apidoc.Load(ctx, specPath)
	if err != nil {
		fiberlog.Errorf("[Main] API request validation disabled: %v", err)
	}

	deps, err := router.NewDeps(ctx, doc)
	if err != nil {
		panic(err)
	}

	// ROUTER
	router.InstallRouter(app, deps)

	return app
}
