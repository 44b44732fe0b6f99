package services

import (
	"errors"

	"socialboard/logger"
	"socialboard/models"
	"socialboard/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(p *models.Principal, req models.CreateArticleRequest) (*models.Article, *models.DomainError)
	UpdateArticle(p *models.Principal, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, *models.DomainError)
	DeleteArticle(p *models.Principal, id uuid.UUID) *models.DomainError
	FindArticles() ([]models.Article, *models.DomainError)
	FindArticleByID(id uuid.UUID) (*models.Article, *models.DomainError)
	FindArticlesByMostDisliked() ([]models.Article, *models.DomainError)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	dislikeRepo repositories.DislikeRepository
	log         *logger.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
	dislikeRepo repositories.DislikeRepository,
	log *logger.Logger,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		dislikeRepo: dislikeRepo,
		log:         log,
	}
}

func (s *articleService) CreateArticle(p *models.Principal, req models.CreateArticleRequest) (*models.Article, *models.DomainError) {
	if derr := RequireIdentity(p); derr != nil {
		return nil, derr
	}

	if req.Content == "" {
		return nil, models.Validation("Content is required")
	}

	article := &models.Article{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		AuthorID: p.ID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		s.log.Error("article create failed", "authorId", p.ID, "error", err)
		return nil, models.Persistence("Article has not been created")
	}

	created, err := s.articleRepo.GetByID(article.ID)
	if err != nil {
		return nil, models.Persistence("Article has not been created")
	}
	return created, nil
}

func (s *articleService) UpdateArticle(p *models.Principal, id uuid.UUID, req models.UpdateArticleRequest) (*models.Article, *models.DomainError) {
	article, derr := s.loadOwned(p, id, "You may only update your own articles")
	if derr != nil {
		return nil, derr
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, models.Validation("Content must not be empty")
		}
		article.Content = *req.Content
	}

	if err := s.articleRepo.Update(article); err != nil {
		s.log.Error("article update failed", "articleId", id, "error", err)
		return nil, models.Persistence("Article has not been updated")
	}

	return s.decorate(article)
}

func (s *articleService) DeleteArticle(p *models.Principal, id uuid.UUID) *models.DomainError {
	_, derr := s.loadOwned(p, id, "You may only delete your own articles")
	if derr != nil {
		return derr
	}

	if err := s.articleRepo.DeleteCascade(id); err != nil {
		s.log.Error("article delete failed", "articleId", id, "error", err)
		return models.Persistence("Article has not been deleted")
	}
	return nil
}

func (s *articleService) FindArticles() ([]models.Article, *models.DomainError) {
	articles, err := s.articleRepo.GetAll()
	if err != nil {
		return nil, models.Persistence("Articles could not be loaded")
	}
	if derr := s.fillCounts(articles); derr != nil {
		return nil, derr
	}
	return articles, nil
}

func (s *articleService) FindArticleByID(id uuid.UUID) (*models.Article, *models.DomainError) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Article not found")
		}
		return nil, models.Persistence("Article could not be loaded")
	}
	return s.decorate(article)
}

func (s *articleService) FindArticlesByMostDisliked() ([]models.Article, *models.DomainError) {
	articles, err := s.articleRepo.GetByMostDisliked()
	if err != nil {
		return nil, models.Persistence("Articles could not be loaded")
	}
	if derr := s.fillCounts(articles); derr != nil {
		return nil, derr
	}
	return articles, nil
}

func (s *articleService) loadOwned(p *models.Principal, id uuid.UUID, forbiddenMsg string) (*models.Article, *models.DomainError) {
	if derr := RequireIdentity(p); derr != nil {
		return nil, derr
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Article not found")
		}
		return nil, models.Persistence("Article could not be loaded")
	}

	if derr := RequireOwnership(p, article.AuthorID, forbiddenMsg); derr != nil {
		return nil, derr
	}
	return article, nil
}

// decorate attaches the derived dislike count, the dislike rows and the
// comment thread to a single article.
func (s *articleService) decorate(article *models.Article) (*models.Article, *models.DomainError) {
	dislikes, err := s.dislikeRepo.GetByArticle(article.ID)
	if err != nil {
		return nil, models.Persistence("Article could not be loaded")
	}
	article.Dislikes = dislikes
	article.NbOfDislikes = int64(len(dislikes))

	comments, err := s.commentRepo.GetByArticle(article.ID)
	if err != nil {
		return nil, models.Persistence("Article could not be loaded")
	}
	if len(comments) > 0 {
		ids := make([]uuid.UUID, len(comments))
		for i := range comments {
			ids[i] = comments[i].ID
		}
		counts, err := s.dislikeRepo.CountByComments(ids)
		if err != nil {
			return nil, models.Persistence("Article could not be loaded")
		}
		for i := range comments {
			comments[i].NbOfDislikes = counts[comments[i].ID]
		}
	}
	article.Comments = comments

	return article, nil
}

func (s *articleService) fillCounts(articles []models.Article) *models.DomainError {
	if len(articles) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}
	counts, err := s.dislikeRepo.CountByArticles(ids)
	if err != nil {
		return models.Persistence("Articles could not be loaded")
	}
	for i := range articles {
		articles[i].NbOfDislikes = counts[articles[i].ID]
	}
	return nil
}
