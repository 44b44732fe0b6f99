package services

import (
	"errors"

	"socialboard/logger"
	"socialboard/models"
	"socialboard/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentService interface {
	AddComment(p *models.Principal, req models.AddCommentRequest) (*models.Comment, *models.DomainError)
	UpdateComment(p *models.Principal, id uuid.UUID, req models.UpdateCommentRequest) (*models.Comment, *models.DomainError)
	DeleteComment(p *models.Principal, id uuid.UUID) *models.DomainError
	GetComments(articleID uuid.UUID) ([]models.Comment, *models.DomainError)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	dislikeRepo repositories.DislikeRepository
	log         *logger.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	dislikeRepo repositories.DislikeRepository,
	log *logger.Logger,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		dislikeRepo: dislikeRepo,
		log:         log,
	}
}

func (s *commentService) AddComment(p *models.Principal, req models.AddCommentRequest) (*models.Comment, *models.DomainError) {
	if derr := RequireIdentity(p); derr != nil {
		return nil, derr
	}

	if req.Content == "" {
		return nil, models.Validation("Content is required")
	}

	if _, err := s.articleRepo.GetByID(req.ArticleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Article not found")
		}
		return nil, models.Persistence("Comment has not been created")
	}

	comment := &models.Comment{
		Content:   req.Content,
		AuthorID:  p.ID,
		ArticleID: req.ArticleID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		s.log.Error("comment create failed", "articleId", req.ArticleID, "error", err)
		return nil, models.Persistence("Comment has not been created")
	}

	created, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, models.Persistence("Comment has not been created")
	}
	return created, nil
}

func (s *commentService) UpdateComment(p *models.Principal, id uuid.UUID, req models.UpdateCommentRequest) (*models.Comment, *models.DomainError) {
	comment, derr := s.loadOwned(p, id, "You may only update your own comments")
	if derr != nil {
		return nil, derr
	}

	if req.Content == "" {
		return nil, models.Validation("Content must not be empty")
	}
	comment.Content = req.Content

	if err := s.commentRepo.Update(comment); err != nil {
		s.log.Error("comment update failed", "commentId", id, "error", err)
		return nil, models.Persistence("Comment has not been updated")
	}

	count, err := s.dislikeRepo.CountByTarget(models.CommentTarget(comment.ID))
	if err != nil {
		return nil, models.Persistence("Comment could not be loaded")
	}
	comment.NbOfDislikes = count

	return comment, nil
}

func (s *commentService) DeleteComment(p *models.Principal, id uuid.UUID) *models.DomainError {
	_, derr := s.loadOwned(p, id, "You may only delete your own comments")
	if derr != nil {
		return derr
	}

	if err := s.commentRepo.DeleteCascade(id); err != nil {
		s.log.Error("comment delete failed", "commentId", id, "error", err)
		return models.Persistence("Comment has not been deleted")
	}
	return nil
}

func (s *commentService) GetComments(articleID uuid.UUID) ([]models.Comment, *models.DomainError) {
	comments, err := s.commentRepo.GetByArticle(articleID)
	if err != nil {
		return nil, models.Persistence("Comments could not be loaded")
	}

	if len(comments) > 0 {
		ids := make([]uuid.UUID, len(comments))
		for i := range comments {
			ids[i] = comments[i].ID
		}
		counts, err := s.dislikeRepo.CountByComments(ids)
		if err != nil {
			return nil, models.Persistence("Comments could not be loaded")
		}
		for i := range comments {
			comments[i].NbOfDislikes = counts[comments[i].ID]
		}
	}

	return comments, nil
}

func (s *commentService) loadOwned(p *models.Principal, id uuid.UUID, forbiddenMsg string) (*models.Comment, *models.DomainError) {
	if derr := RequireIdentity(p); derr != nil {
		return nil, derr
	}

	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Comment not found")
		}
		return nil, models.Persistence("Comment could not be loaded")
	}

	if derr := RequireOwnership(p, comment.AuthorID, forbiddenMsg); derr != nil {
		return nil, derr
	}
	return comment, nil
}
