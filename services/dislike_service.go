package services

import (
	"errors"

	"socialboard/logger"
	"socialboard/models"
	"socialboard/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DislikeService owns the dislike aggregation rules: one dislike per
// (user, target), counts derived from the rows, symmetric rejection on
// duplicate add and on missing remove.
type DislikeService interface {
	AddDislike(p *models.Principal, target models.Target) (*models.Dislike, *models.DomainError)
	RemoveDislike(p *models.Principal, target models.Target) *models.DomainError
	CountDislikes(target models.Target) (int64, *models.DomainError)
	DislikesByArticle(articleID uuid.UUID) ([]models.Dislike, *models.DomainError)
	DislikesByComment(commentID uuid.UUID) ([]models.Dislike, *models.DomainError)
	DislikesByUser(userID uuid.UUID) ([]models.Dislike, *models.DomainError)
}

type dislikeService struct {
	dislikeRepo repositories.DislikeRepository
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	log         *logger.Logger
}

func NewDislikeService(
	dislikeRepo repositories.DislikeRepository,
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
	log *logger.Logger,
) DislikeService {
	return &dislikeService{
		dislikeRepo: dislikeRepo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		log:         log,
	}
}

func (s *dislikeService) AddDislike(p *models.Principal, target models.Target) (*models.Dislike, *models.DomainError) {
	if derr := RequireIdentity(p); derr != nil {
		return nil, derr
	}

	if derr := s.targetExists(target); derr != nil {
		return nil, derr
	}

	dislike := &models.Dislike{UserID: p.ID}
	targetID := target.ID()
	if target.Kind() == models.TargetArticle {
		dislike.ArticleID = &targetID
	} else {
		dislike.CommentID = &targetID
	}

	// No prior existence check: the insert itself is the uniqueness gate, so
	// two concurrent adds for the same (user, target) cannot both succeed.
	if err := s.dislikeRepo.Create(dislike); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.DuplicateDislike("Already disliked")
		}
		s.log.Error("dislike create failed", "userId", p.ID, "targetKind", target.Kind(), "targetId", targetID, "error", err)
		return nil, models.Persistence("Dislike has not been created")
	}

	created, err := s.dislikeRepo.GetByID(dislike.ID)
	if err != nil {
		return nil, models.Persistence("Dislike has not been created")
	}
	return created, nil
}

func (s *dislikeService) RemoveDislike(p *models.Principal, target models.Target) *models.DomainError {
	if derr := RequireIdentity(p); derr != nil {
		return derr
	}

	rows, err := s.dislikeRepo.DeleteByUserAndTarget(p.ID, target)
	if err != nil {
		s.log.Error("dislike delete failed", "userId", p.ID, "targetKind", target.Kind(), "targetId", target.ID(), "error", err)
		return models.Persistence("Dislike has not been deleted")
	}
	// A second removal is an error, mirroring the duplicate rejection on add.
	if rows == 0 {
		return models.NotFound("Dislike not found")
	}
	return nil
}

func (s *dislikeService) CountDislikes(target models.Target) (int64, *models.DomainError) {
	count, err := s.dislikeRepo.CountByTarget(target)
	if err != nil {
		return 0, models.Persistence("Dislikes could not be counted")
	}
	return count, nil
}

func (s *dislikeService) DislikesByArticle(articleID uuid.UUID) ([]models.Dislike, *models.DomainError) {
	dislikes, err := s.dislikeRepo.GetByArticle(articleID)
	if err != nil {
		return nil, models.Persistence("Dislikes could not be loaded")
	}
	return dislikes, nil
}

func (s *dislikeService) DislikesByComment(commentID uuid.UUID) ([]models.Dislike, *models.DomainError) {
	dislikes, err := s.dislikeRepo.GetByComment(commentID)
	if err != nil {
		return nil, models.Persistence("Dislikes could not be loaded")
	}
	return dislikes, nil
}

func (s *dislikeService) DislikesByUser(userID uuid.UUID) ([]models.Dislike, *models.DomainError) {
	dislikes, err := s.dislikeRepo.GetByUser(userID)
	if err != nil {
		return nil, models.Persistence("Dislikes could not be loaded")
	}
	return dislikes, nil
}

func (s *dislikeService) targetExists(target models.Target) *models.DomainError {
	var err error
	if target.Kind() == models.TargetArticle {
		_, err = s.articleRepo.GetByID(target.ID())
	} else {
		_, err = s.commentRepo.GetByID(target.ID())
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if target.Kind() == models.TargetArticle {
				return models.NotFound("Article not found")
			}
			return models.NotFound("Comment not found")
		}
		return models.Persistence("Dislike has not been created")
	}
	return nil
}
