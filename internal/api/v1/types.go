package apiv1

import "github.com/harsoyo/notaris-web/app/models"

// Pong defines model for Pong.
type Pong struct {
	Ping string `json:"ping"`
}

// Article defines model for Article.
type Article struct {
	ID          uint64  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Body        string  `json:"body"`
	Author      string  `json:"author"`
	ImageURL    *string `json:"image_url,omitempty"`
	UploadDate  string  `json:"upload_date"`
	UploadTime  string  `json:"upload_time"`
	UpdateDate  *string `json:"update_date,omitempty"`
	UpdateTime  *string `json:"update_time,omitempty"`
}

// ArticleList defines model for ArticleList.
type ArticleList struct {
	Articles []Article `json:"articles"`
	Total    int       `json:"total"`
}

// CreateArticleJSONBody defines body for CreateArticle for application/json ContentType.
type CreateArticleJSONBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Author      string `json:"author"`
}

// Error defines model for Error.
type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ListArticlesParams defines parameters for ListArticles.
type ListArticlesParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}

func toArticle(a *models.Article) Article {
	return Article{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
		Author:      a.AuthorOrDefault(),
		ImageURL:    a.ImageURL,
		UploadDate:  a.UploadDate,
		UploadTime:  a.UploadTime,
		UpdateDate:  a.UpdateDate,
		UpdateTime:  a.UpdateTime,
	}
}
