package services

import (
	"fmt"
	"testing"

	"socialboard/config"
	"socialboard/models"
	"socialboard/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a named in-memory sqlite database. TranslateError matters:
// the dislike uniqueness tests depend on gorm.ErrDuplicatedKey coming back
// from the driver.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatal("failed to open test database:", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatal("failed to migrate test database:", err)
	}

	return db
}

func createTestUser(t *testing.T, repo repositories.UserRepository, username string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	user := &models.User{Username: username, Password: string(hashed)}
	if err := repo.Create(user); err != nil {
		t.Fatal("failed to create test user:", err)
	}
	return user
}

func asPrincipal(user *models.User) *models.Principal {
	return &models.Principal{ID: user.ID, Username: user.Username}
}
