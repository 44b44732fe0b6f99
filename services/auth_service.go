package services

import (
	"errors"
	"time"

	"socialboard/config"
	"socialboard/logger"
	"socialboard/models"
	"socialboard/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	CreateUser(req models.CreateUserRequest) (*models.UserSummary, *models.DomainError)
	SignIn(req models.SignInRequest) (string, *models.DomainError)
	UpdateUser(p *models.Principal, id uuid.UUID, req models.UpdateUserRequest) (*models.UserSummary, *models.DomainError)
	FindUserByID(id uuid.UUID) (*models.UserSummary, *models.DomainError)
	GetUserByToken(tokenString string) (*models.Principal, *models.DomainError)
}

type authService struct {
	userRepo repositories.UserRepository
	log      *logger.Logger
}

func NewAuthService(userRepo repositories.UserRepository, log *logger.Logger) AuthService {
	return &authService{userRepo: userRepo, log: log}
}

func (s *authService) CreateUser(req models.CreateUserRequest) (*models.UserSummary, *models.DomainError) {
	if req.Username == "" || req.Password == "" {
		return nil, models.Validation("Username and password are required")
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, models.Validation("Username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("user lookup failed", "username", req.Username, "error", err)
		return nil, models.Persistence("User has not been created")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.Persistence("User has not been created")
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique index closes the probe-then-insert race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.Validation("Username is already taken")
		}
		s.log.Error("user create failed", "username", req.Username, "error", err)
		return nil, models.Persistence("User has not been created")
	}

	return user.Summary(), nil
}

func (s *authService) SignIn(req models.SignInRequest) (string, *models.DomainError) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.Unauthorized()
		}
		s.log.Error("user lookup failed", "username", req.Username, "error", err)
		return "", models.Persistence("Sign in failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", models.Unauthorized()
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.log.Error("token generation failed", "userId", user.ID, "error", err)
		return "", models.Persistence("Sign in failed")
	}

	return token, nil
}

func (s *authService) UpdateUser(p *models.Principal, id uuid.UUID, req models.UpdateUserRequest) (*models.UserSummary, *models.DomainError) {
	if derr := RequireOwnership(p, id, "You may only update your own profile"); derr != nil {
		return nil, derr
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("User not found")
		}
		return nil, models.Persistence("User has not been updated")
	}

	if req.Username != nil {
		if *req.Username == "" {
			return nil, models.Validation("Username must not be empty")
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, models.Validation("Password must not be empty")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.Persistence("User has not been updated")
		}
		user.Password = string(hashedPassword)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.Validation("Username is already taken")
		}
		s.log.Error("user update failed", "userId", id, "error", err)
		return nil, models.Persistence("User has not been updated")
	}

	return user.Summary(), nil
}

func (s *authService) FindUserByID(id uuid.UUID) (*models.UserSummary, *models.DomainError) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("User not found")
		}
		return nil, models.Persistence("User lookup failed")
	}
	return user.Summary(), nil
}

// GetUserByToken resolves the opaque bearer credential back to its principal.
func (s *authService) GetUserByToken(tokenString string) (*models.Principal, *models.DomainError) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.InvalidToken("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.InvalidToken("Invalid token")
	}

	idStr, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil || username == "" {
		return nil, models.InvalidToken("Invalid token")
	}

	return &models.Principal{ID: id, Username: username}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(config.JWTSecret)
}
