package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/internal/pkg/upload"
	"github.com/harsoyo/notaris-web/internal/pkg/utils"
)

//go:embed layouts pages articles auth errors
var FS embed.FS

// NewEngine builds the html engine over the embedded templates.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"articleHTML": utils.ArticleHTML,
		"excerpt": func(s string, n int) string {
			return utils.Truncate(utils.PlainText(s), n)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"card": func(a models.Article, canEdit bool) fiber.Map {
			return fiber.Map{"Article": &a, "CanEdit": canEdit}
		},
		"maxImageMB": func() int64 { return upload.MaxImageBytes / (1024 * 1024) },
	})
	return engine
}
