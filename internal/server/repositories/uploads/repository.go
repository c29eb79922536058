package uploads

import (
	"context"

	"github.com/dmitrijs2005/uploadvault/internal/server/models"
)

// Repository is the durable record store for uploads, keyed by content
// digest.
type Repository interface {
	// FindBySHA256 returns the upload for digest, or common.ErrNotFound.
	FindBySHA256(ctx context.Context, digest string) (*models.Upload, error)

	// FindOrCreate inserts u unless a record with the same digest already
	// exists, in which case the existing record is returned instead. The
	// decision is a single conditional insert, never a read-then-write
	// pair, so concurrent requests for the same digest resolve to exactly
	// one record. The returned bool reports whether a new record was
	// created.
	FindOrCreate(ctx context.Context, u *models.Upload) (*models.Upload, bool, error)
}
