package repositories

import (
	"socialboard/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DislikeRepository interface {
	Create(dislike *models.Dislike) error
	GetByID(id uuid.UUID) (*models.Dislike, error)
	DeleteByUserAndTarget(userID uuid.UUID, target models.Target) (int64, error)
	CountByTarget(target models.Target) (int64, error)
	CountByArticles(ids []uuid.UUID) (map[uuid.UUID]int64, error)
	CountByComments(ids []uuid.UUID) (map[uuid.UUID]int64, error)
	GetByArticle(articleID uuid.UUID) ([]models.Dislike, error)
	GetByComment(commentID uuid.UUID) ([]models.Dislike, error)
	GetByUser(userID uuid.UUID) ([]models.Dislike, error)
}

type dislikeRepository struct {
	db *gorm.DB
}

func NewDislikeRepository(db *gorm.DB) DislikeRepository {
	return &dislikeRepository{db: db}
}

// Create relies on the (user, article) / (user, comment) unique indexes for
// atomic insert-if-absent; a concurrent duplicate comes back as
// gorm.ErrDuplicatedKey rather than a second success.
func (r *dislikeRepository) Create(dislike *models.Dislike) error {
	return r.db.Create(dislike).Error
}

func (r *dislikeRepository) GetByID(id uuid.UUID) (*models.Dislike, error) {
	var dislike models.Dislike
	err := r.db.Preload("User").First(&dislike, "id = ?", id).Error
	return &dislike, err
}

func (r *dislikeRepository) DeleteByUserAndTarget(userID uuid.UUID, target models.Target) (int64, error) {
	res := r.byTarget(target).
		Where("user_id = ?", userID).
		Delete(&models.Dislike{})
	return res.RowsAffected, res.Error
}

func (r *dislikeRepository) CountByTarget(target models.Target) (int64, error) {
	var count int64
	err := r.byTarget(target).Model(&models.Dislike{}).Count(&count).Error
	return count, err
}

func (r *dislikeRepository) CountByArticles(ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countGrouped("article_id", ids)
}

func (r *dislikeRepository) CountByComments(ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countGrouped("comment_id", ids)
}

func (r *dislikeRepository) countGrouped(column string, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var results []struct {
		TargetID uuid.UUID
		Count    int64
	}
	err := r.db.Model(&models.Dislike{}).
		Select(column+" as target_id, COUNT(*) as count").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		counts[result.TargetID] = result.Count
	}
	return counts, nil
}

func (r *dislikeRepository) GetByArticle(articleID uuid.UUID) ([]models.Dislike, error) {
	return r.list(r.db.Where("article_id = ?", articleID))
}

func (r *dislikeRepository) GetByComment(commentID uuid.UUID) ([]models.Dislike, error) {
	return r.list(r.db.Where("comment_id = ?", commentID))
}

func (r *dislikeRepository) GetByUser(userID uuid.UUID) ([]models.Dislike, error) {
	return r.list(r.db.Where("user_id = ?", userID))
}

func (r *dislikeRepository) list(query *gorm.DB) ([]models.Dislike, error) {
	var dislikes []models.Dislike
	err := query.Preload("User").Order("created_at asc").Find(&dislikes).Error
	return dislikes, err
}

func (r *dislikeRepository) byTarget(target models.Target) *gorm.DB {
	if target.Kind() == models.TargetArticle {
		return r.db.Where("article_id = ?", target.ID())
	}
	return r.db.Where("comment_id = ?", target.ID())
}
