package models

import "github.com/google/uuid"

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest fields are pointers so an omitted field is left alone
// while an empty string is still a visible (and rejectable) value.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Bio      *string `json:"bio"`
}

type CreateArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type AddCommentRequest struct {
	Content   string    `json:"content" validate:"required"`
	ArticleID uuid.UUID `json:"articleId" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type ArticleDislikeRequest struct {
	ArticleID uuid.UUID `json:"articleId" validate:"required"`
}

type CommentDislikeRequest struct {
	CommentID uuid.UUID `json:"commentId" validate:"required"`
}
