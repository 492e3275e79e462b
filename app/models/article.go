package models

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/harsoyo/notaris-web/internal/pkg/slug"
)

// DefaultAuthor is used when an article is submitted without an author.
const DefaultAuthor = "Harsoyo, S.IP, SH."

// Article represents one published post in the artikel table
type Article struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"column:judul;type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Description string  `gorm:"column:deskripsi;type:text;not null" json:"description" validate:"required"`
	Body        string  `gorm:"column:isi;not null" json:"body" validate:"required"`
	Author      string  `gorm:"column:penulis;type:varchar(255)" json:"author"`
	ImageURL    *string `gorm:"column:gambar_url;type:varchar(512)" json:"image_url"`
	UploadDate  string  `gorm:"column:tanggal_upload;type:varchar(10);index" json:"upload_date"`
	UploadTime  string  `gorm:"column:jam_upload;type:varchar(8)" json:"upload_time"`
	UpdateDate  *string `gorm:"column:tanggal_update;type:varchar(10);index" json:"update_date"`
	UpdateTime  *string `gorm:"column:jam_update;type:varchar(8)" json:"update_time"`

	// Slug is derived from Title on read and never persisted.
	Slug string `gorm:"-" json:"slug"`
}

// TableName specifies the table name for the Article model
func (Article) TableName() string {
	return "artikel"
}

func (a *Article) Validate() error {
	v := validator.New()
	return v.Struct(a)
}

// WithSlug fills Slug from the current title and returns the article.
func (a *Article) WithSlug() *Article {
	a.Slug = slug.Derive(a.Title)
	return a
}

// AuthorOrDefault returns the author, falling back to DefaultAuthor.
func (a *Article) AuthorOrDefault() string {
	if a.Author == "" {
		return DefaultAuthor
	}
	return a.Author
}

// HasImage reports whether an image URL was stored for the article.
func (a *Article) HasImage() bool {
	return a.ImageURL != nil && *a.ImageURL != ""
}

// LastModifiedDate returns the update date if present, otherwise the upload date.
func (a *Article) LastModifiedDate() string {
	if a.UpdateDate != nil && *a.UpdateDate != "" {
		return *a.UpdateDate
	}
	return a.UploadDate
}

// SortByRecency orders articles by update date descending with missing update
// dates last, then by upload date descending. Equal keys keep their input order.
func SortByRecency(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return recencyLess(&articles[i], &articles[j])
	})
}

func recencyLess(a, b *Article) bool {
	aHas := a.UpdateDate != nil
	bHas := b.UpdateDate != nil
	if aHas != bHas {
		return aHas
	}
	if aHas && *a.UpdateDate != *b.UpdateDate {
		return *a.UpdateDate > *b.UpdateDate
	}
	return a.UploadDate > b.UploadDate
}
