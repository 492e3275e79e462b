package viewmodel

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/harsoyo/notaris-web/internal/pkg/seo"
)

// Layout is the data every page hands to layouts/main
type Layout struct {
	Page          string
	FromProtected bool
	IsError       bool
	Msg           fiber.Map
	Username      string
	IsAdmin       bool
	CSRF          string
	SEO           seo.Page
	Canonical     string
	JSONLD        template.HTML
	Year          int
}

// NavActive reports whether name is the current navigation entry.
func (l Layout) NavActive(name string) bool {
	return l.Page == name
}
