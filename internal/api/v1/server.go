package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// (GET /articles)
	ListArticles(c *fiber.Ctx, params ListArticlesParams) error
	// (POST /articles)
	CreateArticle(c *fiber.Ctx) error
	// (GET /articles/{ref})
	GetArticle(c *fiber.Ctx, slug string) error
	// (DELETE /articles/{ref})
	DeleteArticle(c *fiber.Ctx, id uint64) error
}

// ServerInterfaceWrapper converts fiber contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func badParam(c *fiber.Ctx, name string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(Error{
		Error:   "bad_request",
		Message: "Invalid format for parameter " + name + ": " + err.Error(),
	})
}

// GetPing operation middleware
func (siw *ServerInterfaceWrapper) GetPing(c *fiber.Ctx) error {
	return siw.Handler.GetPing(c)
}

// ListArticles operation middleware
func (siw *ServerInterfaceWrapper) ListArticles(c *fiber.Ctx) error {
	var params ListArticlesParams
	if v := c.Query("search"); v != "" {
		params.Search = &v
	}
	return siw.Handler.ListArticles(c, params)
}

// CreateArticle operation middleware
func (siw *ServerInterfaceWrapper) CreateArticle(c *fiber.Ctx) error {
	return siw.Handler.CreateArticle(c)
}

// GetArticle operation middleware
func (siw *ServerInterfaceWrapper) GetArticle(c *fiber.Ctx) error {
	return siw.Handler.GetArticle(c, c.Params("ref"))
}

// DeleteArticle operation middleware
func (siw *ServerInterfaceWrapper) DeleteArticle(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("ref"), 10, 64)
	if err != nil {
		return badParam(c, "ref", err)
	}
	return siw.Handler.DeleteArticle(c, id)
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL string
	// WriteMiddlewares run before every mutating operation.
	WriteMiddlewares []fiber.Handler
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	write := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, options.WriteMiddlewares...), h)
	}

	router.Get(options.BaseURL+"/ping", wrapper.GetPing)
	router.Get(options.BaseURL+"/articles", wrapper.ListArticles)
	router.Post(options.BaseURL+"/articles", write(wrapper.CreateArticle)...)
	router.Get(options.BaseURL+"/articles/:ref", wrapper.GetArticle)
	router.Delete(options.BaseURL+"/articles/:ref", write(wrapper.DeleteArticle)...)
}
