package repositories

import (
	"socialboard/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uuid.UUID) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetByMostDisliked() ([]models.Article, error)
	Update(article *models.Article) error
	DeleteCascade(id uuid.UUID) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, "id = ?", id).Error
	return &article, err
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

// GetByMostDisliked orders by live dislike count descending; ties go to the
// older article, then to the id so the ordering is fully deterministic.
func (r *articleRepository) GetByMostDisliked() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Model(&models.Article{}).
		Select("articles.*").
		Joins("LEFT JOIN dislikes ON dislikes.article_id = articles.id").
		Group("articles.id").
		Order("COUNT(dislikes.id) desc").
		Order("articles.created_at asc").
		Order("articles.id asc").
		Preload("Author").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// DeleteCascade removes the article together with its comments, the dislikes
// on those comments, and the article's own dislikes, in one transaction so a
// failed delete never leaves orphaned dislike rows behind.
func (r *articleRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []uuid.UUID
		if err := tx.Model(&models.Comment{}).
			Where("article_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).
				Delete(&models.Dislike{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("article_id = ?", id).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("article_id = ?", id).
			Delete(&models.Dislike{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Article{}, "id = ?", id).Error
	})
}
