package services

import (
	"socialboard/models"

	"github.com/google/uuid"
)

// RequireIdentity rejects anonymous requests before any state is touched.
func RequireIdentity(p *models.Principal) *models.DomainError {
	if p == nil {
		return models.Unauthorized()
	}
	return nil
}

// RequireOwnership rejects a request whose principal does not own the target
// resource. Applied on every article/comment update and delete; disliking is
// deliberately exempt since users dislike content they do not own.
func RequireOwnership(p *models.Principal, ownerID uuid.UUID, message string) *models.DomainError {
	if err := RequireIdentity(p); err != nil {
		return err
	}
	if p.ID != ownerID {
		return models.Forbidden(message)
	}
	return nil
}
