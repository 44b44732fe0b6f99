package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string    `json:"title"`
	Content  string    `json:"content" gorm:"type:text;not null"`
	ImageURL string    `json:"imageUrl"`
	AuthorID uuid.UUID `json:"authorId" gorm:"type:uuid;not null;index"`
	Author   User      `json:"author" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
	Dislikes []Dislike `json:"dislikes,omitempty" gorm:"foreignKey:ArticleID"`

	// Derived from the dislike rows on every read, never stored.
	NbOfDislikes int64 `json:"NbOfDislikes" gorm:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
