package constants

// Route constants shared by controllers and middleware
const (
	PublicRoute   = "/"
	LoginRoute    = "/login"
	ArticlesRoute = "/articles"
	// HTMX target that receives create-form errors
	ArticleFormErrorsTarget = "#article-form-errors"
)
