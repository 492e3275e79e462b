package repository

import (
	"context"
	"errors"

	"github.com/harsoyo/notaris-web/app/models"
	"gorm.io/gorm"
)

// recencyOrder sorts missing update dates last on both MySQL and PostgreSQL;
// "NULLS LAST" is not understood by MySQL.
const recencyOrder = "tanggal_update IS NULL, tanggal_update DESC, tanggal_upload DESC"

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// List retrieves all articles, most recent first
func (r *articleRepository) List(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Order(recencyOrder).Find(&articles).Error
	return articles, err
}

// Insert creates the article and returns the stored row
func (r *articleRepository) Insert(ctx context.Context, article *models.Article) (*models.Article, error) {
	result := r.db.WithContext(ctx).Create(article)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || article.ID == 0 {
		return nil, nil
	}

	stored, err := r.GetByID(ctx, article.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return stored, err
}

// GetByID retrieves an article by its ID
func (r *articleRepository) GetByID(ctx context.Context, id uint64) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Delete removes an article by its ID
func (r *articleRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}
