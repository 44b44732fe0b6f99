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

type AuthServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	userRepo repositories.UserRepository
	service  AuthService
}

func (s *AuthServiceTestSuite) SetupSuite() {
	s.db = newTestDB(s.T(), "auth_service_test")
	s.userRepo = repositories.NewUserRepository(s.db)
	s.service = NewAuthService(s.userRepo, logger.NewNop())
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM users")
}

func (s *AuthServiceTestSuite) TestCreateUser() {
	user, derr := s.service.CreateUser(models.CreateUserRequest{Username: "alice", Password: "password123"})
	s.Require().Nil(derr)
	s.Equal("alice", user.Username)
	s.NotEqual(uuid.Nil, user.ID)
}

func (s *AuthServiceTestSuite) TestCreateUserDuplicateUsername() {
	_, derr := s.service.CreateUser(models.CreateUserRequest{Username: "alice", Password: "password123"})
	s.Require().Nil(derr)

	_, derr = s.service.CreateUser(models.CreateUserRequest{Username: "alice", Password: "different456"})
	s.Require().NotNil(derr)
	s.Equal(models.KindValidation, derr.Kind)
}

func (s *AuthServiceTestSuite) TestSignInAndResolveToken() {
	created, derr := s.service.CreateUser(models.CreateUserRequest{Username: "alice", Password: "password123"})
	s.Require().Nil(derr)

	token, derr := s.service.SignIn(models.SignInRequest{Username: "alice", Password: "password123"})
	s.Require().Nil(derr)
	s.NotEmpty(token)

	principal, derr := s.service.GetUserByToken(token)
	s.Require().Nil(derr)
	s.Equal(created.ID, principal.ID)
	s.Equal("alice", principal.Username)
}

func (s *AuthServiceTestSuite) TestSignInWrongPassword() {
	_, derr := s.service.CreateUser(models.CreateUserRequest{Username: "alice", Password: "password123"})
	s.Require().Nil(derr)

	_, derr = s.service.SignIn(models.SignInRequest{Username: "alice", Password: "nope"})
	s.Require().NotNil(derr)
	s.Equal(models.KindUnauthorized, derr.Kind)
}

func (s *AuthServiceTestSuite) TestSignInUnknownUser() {
	_, derr := s.service.SignIn(models.SignInRequest{Username: "ghost", Password: "password123"})
	s.Require().NotNil(derr)
	s.Equal(models.KindUnauthorized, derr.Kind)
}

func (s *AuthServiceTestSuite) TestGetUserByTokenRejectsGarbage() {
	_, derr := s.service.GetUserByToken("not-a-token")
	s.Require().NotNil(derr)
	s.Equal(models.KindInvalidToken, derr.Kind)
}

func (s *AuthServiceTestSuite) TestUpdateUserOwnershipEnforced() {
	alice, derr := s.service.CreateUser(models.CreateUserRequest{Username: "alice", Password: "password123"})
	s.Require().Nil(derr)
	bob, derr := s.service.CreateUser(models.CreateUserRequest{Username: "bob", Password: "password123"})
	s.Require().Nil(derr)

	bio := "hello"
	_, derr = s.service.UpdateUser(&models.Principal{ID: bob.ID, Username: "bob"}, alice.ID, models.UpdateUserRequest{Bio: &bio})
	s.Require().NotNil(derr)
	s.Equal(models.KindForbidden, derr.Kind)

	updated, derr := s.service.UpdateUser(&models.Principal{ID: alice.ID, Username: "alice"}, alice.ID, models.UpdateUserRequest{Bio: &bio})
	s.Require().Nil(derr)
	s.Equal("hello", updated.Bio)
}

func (s *AuthServiceTestSuite) TestUpdateUserRequiresIdentity() {
	bio := "hello"
	_, derr := s.service.UpdateUser(nil, uuid.New(), models.UpdateUserRequest{Bio: &bio})
	s.Require().NotNil(derr)
	s.Equal(models.KindUnauthorized, derr.Kind)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
