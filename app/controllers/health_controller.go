package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/harsoyo/notaris-web/internal/pkg/cache"
	"github.com/harsoyo/notaris-web/internal/pkg/database"
)

// HandleHealthz reports database and cache reachability.
func HandleHealthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.Map{"database": "ok", "cache": "ok"}
	healthy := true

	if err := database.Ping(); err != nil {
		fiberlog.Errorf("[Health] Database ping failed: %v", err)
		status["database"] = "unavailable"
		healthy = false
	}
	if err := cache.Ping(ctx); err != nil {
		// cache outages do not fail the check
		fiberlog.Warnf("[Health] Cache ping failed: %v", err)
		status["cache"] = "unavailable"
	}

	if !healthy {
		status["status"] = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	status["status"] = "ok"
	return c.JSON(status)
}
