package repository

import (
	"context"
	"sync"
	"time"

	"github.com/harsoyo/notaris-web/app/models"
	"gorm.io/gorm"
)

// MemoryArticleRepository keeps articles in process memory. It backs
// DB_DRIVER=memory for local previews and the handler tests.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
	nextID   uint64
}

// NewMemoryArticleRepository creates an empty in-memory article store
func NewMemoryArticleRepository(seed ...models.Article) *MemoryArticleRepository {
	r := &MemoryArticleRepository{nextID: 1}
	for _, a := range seed {
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
		r.articles = append(r.articles, a)
	}
	return r
}

func (r *MemoryArticleRepository) List(_ context.Context) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Article, len(r.articles))
	copy(out, r.articles)
	models.SortByRecency(out)
	return out, nil
}

func (r *MemoryArticleRepository) Insert(_ context.Context, article *models.Article) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *article
	stored.ID = r.nextID
	stored.Slug = ""
	r.nextID++
	r.articles = append(r.articles, stored)

	article.ID = stored.ID
	return &stored, nil
}

func (r *MemoryArticleRepository) GetByID(_ context.Context, id uint64) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.articles {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryArticleRepository) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.articles {
		if a.ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryUserRepository is the in-memory counterpart of the users table.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[uint]models.User
	nextID uint
}

// NewMemoryUserRepository creates an in-memory user store
func NewMemoryUserRepository(seed ...models.User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make(map[uint]models.User), nextID: 1}
	for _, u := range seed {
		_ = r.Create(context.Background(), &u)
	}
	return r
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryUserRepository) TouchLastLogin(_ context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastLoginAt = &at
	r.users[id] = u
	return nil
}

// NewMemoryRepositories builds a Repositories set without a database
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Article: NewMemoryArticleRepository(),
		User:    NewMemoryUserRepository(),
	}
}
