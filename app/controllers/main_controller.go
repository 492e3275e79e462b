package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harsoyo/notaris-web/internal/pkg/seo"
)

// HandleHome renders the landing page
func HandleHome(c *fiber.Ctx) error {
	return renderPage(c, "pages/home", newLayout(c, "home", seo.HomePage()), nil)
}

// HandleAbout renders the profile and contact page
func HandleAbout(c *fiber.Ctx) error {
	return renderPage(c, "pages/about", newLayout(c, "about", seo.AboutPageMeta()), nil)
}

// HandleServices renders the notary and PPAT service overview
func HandleServices(c *fiber.Ctx) error {
	return renderPage(c, "pages/services", newLayout(c, "services", seo.ServicesPage()), nil)
}

// HandleNotFound is the catch-all for unknown routes
func HandleNotFound(c *fiber.Ctx) error {
	meta := seo.Page{
		Title:       "Halaman tidak ditemukan - Notaris & PPAT Harsoyo Tegal",
		Description: "Halaman yang Anda cari tidak ditemukan.",
		Path:        c.Path(),
	}
	c.Status(fiber.StatusNotFound)
	return renderPage(c, "errors/not_found", newLayout(c, "", meta), fiber.Map{
		"Heading": "Halaman tidak ditemukan",
		"Message": "Halaman yang Anda cari tidak tersedia.",
	})
}
