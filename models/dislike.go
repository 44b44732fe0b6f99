package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dislike is a join row between a user and exactly one target. The two
// composite unique indexes are what make a second dislike on the same target
// an insert failure rather than a race; rows are hard-deleted so a removed
// dislike frees the slot again.
type Dislike struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index:idx_dislike_user_article,unique,priority:1;index:idx_dislike_user_comment,unique,priority:1"`
	User      User       `json:"user" gorm:"foreignKey:UserID"`
	ArticleID *uuid.UUID `json:"articleId" gorm:"type:uuid;index:idx_dislike_user_article,unique,priority:2"`
	CommentID *uuid.UUID `json:"commentId" gorm:"type:uuid;index:idx_dislike_user_comment,unique,priority:2"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (d *Dislike) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type TargetKind string

const (
	TargetArticle TargetKind = "article"
	TargetComment TargetKind = "comment"
)

// Target identifies the single entity a dislike points at. Keeping the kind
// and id private rules out the both-set and neither-set states the two
// nullable columns would otherwise allow.
type Target struct {
	kind TargetKind
	id   uuid.UUID
}

func ArticleTarget(id uuid.UUID) Target {
	return Target{kind: TargetArticle, id: id}
}

func CommentTarget(id uuid.UUID) Target {
	return Target{kind: TargetComment, id: id}
}

func (t Target) Kind() TargetKind { return t.kind }

func (t Target) ID() uuid.UUID { return t.id }
