package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/harsoyo/notaris-web/internal/pkg/flash"
	"github.com/harsoyo/notaris-web/internal/pkg/seo"
	"github.com/harsoyo/notaris-web/internal/pkg/usercontext"
	"github.com/harsoyo/notaris-web/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

func isHTMXRequest(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

func newLayout(c *fiber.Ctx, page string, meta seo.Page) viewmodel.Layout {
	userCtx := usercontext.GetUserContext(c)

	jsonLD, err := meta.JSONLD(c.UserContext())
	if err != nil {
		fiberlog.Warnf("[SEO] Failed to render structured data for %s: %v", meta.Path, err)
	}

	msg := flash.Get(c)
	return viewmodel.Layout{
		Page:          page,
		FromProtected: userCtx.IsLoggedIn,
		IsError:       msg != nil && msg["type"] == "error",
		Msg:           msg,
		Username:      userCtx.Username,
		IsAdmin:       userCtx.IsAdmin,
		CSRF:          csrfToken(c),
		SEO:           meta,
		Canonical:     meta.Canonical(),
		JSONLD:        jsonLD,
		Year:          time.Now().Year(),
	}
}

// renderPage renders view inside the main layout. data may be nil.
func renderPage(c *fiber.Ctx, view string, layout viewmodel.Layout, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = layout
	return c.Render(view, data, mainLayout)
}
