package services

import (
	"testing"

	"socialboard/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequireIdentity(t *testing.T) {
	derr := RequireIdentity(nil)
	assert.NotNil(t, derr)
	assert.Equal(t, models.KindUnauthorized, derr.Kind)
	assert.Equal(t, 403, derr.Kind.Code())

	assert.Nil(t, RequireIdentity(&models.Principal{ID: uuid.New(), Username: "alice"}))
}

func TestRequireOwnership(t *testing.T) {
	owner := uuid.New()
	p := &models.Principal{ID: owner, Username: "alice"}

	assert.Nil(t, RequireOwnership(p, owner, "forbidden"))

	derr := RequireOwnership(p, uuid.New(), "forbidden")
	assert.NotNil(t, derr)
	assert.Equal(t, models.KindForbidden, derr.Kind)
	assert.Equal(t, "forbidden", derr.Message)

	derr = RequireOwnership(nil, owner, "forbidden")
	assert.NotNil(t, derr)
	assert.Equal(t, models.KindUnauthorized, derr.Kind)
}
