package repository

import (
	"context"
	"time"

	"github.com/harsoyo/notaris-web/app/models"
	"gorm.io/gorm"
)

// ArticleRepository defines the store operations the article flows consume
type ArticleRepository interface {
	// List returns every article ordered by update date (missing last), then upload date.
	List(ctx context.Context) ([]models.Article, error)
	// Insert writes one row and reads it back. A nil article with a nil error
	// means the store accepted the write but returned nothing.
	Insert(ctx context.Context, article *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id uint64) (*models.Article, error)
	// Delete hard deletes the row. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uint64) error
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Article ArticleRepository
	User    UserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepository(db),
		User:    NewUserRepository(db),
	}
}
