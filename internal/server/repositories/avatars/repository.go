package avatars

import (
	"context"

	"github.com/dmitrijs2005/uploadvault/internal/server/models"
	"github.com/dmitrijs2005/uploadvault/internal/upload"
)

// Repository manages per-user single-slot upload references.
type Repository interface {
	// SetSlot points the user's slot for role at uploadID, replacing any
	// previous reference. The other slot is never touched. Roles without
	// a slot are an error.
	SetSlot(ctx context.Context, userID string, role upload.Role, uploadID int64) error

	// Get returns both slot references for the user, or common.ErrNotFound
	// when the user has no avatar row yet.
	Get(ctx context.Context, userID string) (*models.UserAvatar, error)
}
