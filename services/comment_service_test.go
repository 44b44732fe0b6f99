package services

import (
	"testing"

	"socialboard/logger"
	"socialboard/models"
	"socialboard/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CommentServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	userRepo    repositories.UserRepository
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	dislikeRepo repositories.DislikeRepository
	service     CommentService
	dislikes    DislikeService

	alice   *models.User
	bob     *models.User
	article *models.Article
}

func (s *CommentServiceTestSuite) SetupSuite() {
	s.db = newTestDB(s.T(), "comment_service_test")
	s.userRepo = repositories.NewUserRepository(s.db)
	s.articleRepo = repositories.NewArticleRepository(s.db)
	s.commentRepo = repositories.NewCommentRepository(s.db)
	s.dislikeRepo = repositories.NewDislikeRepository(s.db)
	s.service = NewCommentService(s.commentRepo, s.articleRepo, s.dislikeRepo, logger.NewNop())
	s.dislikes = NewDislikeService(s.dislikeRepo, s.articleRepo, s.commentRepo, logger.NewNop())
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM dislikes")
	s.db.Exec("DELETE FROM comments")
	s.db.Exec("DELETE FROM articles")
	s.db.Exec("DELETE FROM users")

	s.alice = createTestUser(s.T(), s.userRepo, "alice")
	s.bob = createTestUser(s.T(), s.userRepo, "bob")

	s.article = &models.Article{Content: "article body", AuthorID: s.alice.ID}
	s.Require().NoError(s.articleRepo.Create(s.article))
}

func (s *CommentServiceTestSuite) TestAddCommentRequiresIdentity() {
	_, derr := s.service.AddComment(nil, models.AddCommentRequest{Content: "hi", ArticleID: s.article.ID})
	s.Require().NotNil(derr)
	s.Equal(models.KindUnauthorized, derr.Kind)
}

func (s *CommentServiceTestSuite) TestAddCommentUnknownArticle() {
	_, derr := s.service.AddComment(asPrincipal(s.bob), models.AddCommentRequest{Content: "hi", ArticleID: uuid.New()})
	s.Require().NotNil(derr)
	s.Equal(models.KindNotFound, derr.Kind)
}

func (s *CommentServiceTestSuite) TestAddAndListComments() {
	comment, derr := s.service.AddComment(asPrincipal(s.bob), models.AddCommentRequest{Content: "hi", ArticleID: s.article.ID})
	s.Require().Nil(derr)
	s.Equal(s.bob.ID, comment.AuthorID)
	s.Equal("bob", comment.Author.Username)

	comments, derr := s.service.GetComments(s.article.ID)
	s.Require().Nil(derr)
	s.Require().Len(comments, 1)
	s.Equal("hi", comments[0].Content)
	s.Equal(int64(0), comments[0].NbOfDislikes)
}

func (s *CommentServiceTestSuite) TestUpdateCommentOwnership() {
	comment, derr := s.service.AddComment(asPrincipal(s.bob), models.AddCommentRequest{Content: "hi", ArticleID: s.article.ID})
	s.Require().Nil(derr)

	_, derr = s.service.UpdateComment(asPrincipal(s.alice), comment.ID, models.UpdateCommentRequest{Content: "edited"})
	s.Require().NotNil(derr)
	s.Equal(models.KindForbidden, derr.Kind)

	updated, derr := s.service.UpdateComment(asPrincipal(s.bob), comment.ID, models.UpdateCommentRequest{Content: "edited"})
	s.Require().Nil(derr)
	s.Equal("edited", updated.Content)
}

func (s *CommentServiceTestSuite) TestDeleteCommentCascadesDislikes() {
	comment, derr := s.service.AddComment(asPrincipal(s.bob), models.AddCommentRequest{Content: "hi", ArticleID: s.article.ID})
	s.Require().Nil(derr)

	_, derr = s.dislikes.AddDislike(asPrincipal(s.alice), models.CommentTarget(comment.ID))
	s.Require().Nil(derr)

	derr = s.service.DeleteComment(asPrincipal(s.bob), comment.ID)
	s.Require().Nil(derr)

	remaining, derr := s.dislikes.DislikesByUser(s.alice.ID)
	s.Require().Nil(derr)
	s.Empty(remaining)

	comments, derr := s.service.GetComments(s.article.ID)
	s.Require().Nil(derr)
	s.Empty(comments)
}

func (s *CommentServiceTestSuite) TestDeleteCommentByNonOwnerForbidden() {
	comment, derr := s.service.AddComment(asPrincipal(s.bob), models.AddCommentRequest{Content: "hi", ArticleID: s.article.ID})
	s.Require().Nil(derr)

	derr = s.service.DeleteComment(asPrincipal(s.alice), comment.ID)
	s.Require().NotNil(derr)
	s.Equal(models.KindForbidden, derr.Kind)
}

func TestCommentServiceSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
