package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null;index"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID"`
	ArticleID uuid.UUID `json:"articleId" gorm:"type:uuid;not null;index"`
	Dislikes  []Dislike `json:"dislikes,omitempty" gorm:"foreignKey:CommentID"`

	NbOfDislikes int64 `json:"NbOfDislikes" gorm:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
