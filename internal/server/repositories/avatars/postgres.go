package avatars

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/uploadvault/internal/common"
	"github.com/dmitrijs2005/uploadvault/internal/dbx"
	"github.com/dmitrijs2005/uploadvault/internal/server/models"
	"github.com/dmitrijs2005/uploadvault/internal/upload"
)

// slotColumns maps each slot-bearing role to the column holding its
// reference. Keeping the mapping explicit makes "never touch the other
// slot" structural: a write can only mention one column.
var slotColumns = map[upload.Role]string{
	upload.RoleAvatar:   "custom_upload_id",
	upload.RoleGravatar: "gravatar_upload_id",
}

// PostgresRepository implements avatar-slot storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SetSlot upserts the user's avatar row, writing only the column owned by
// role. The upsert is atomic per user row, so concurrent uploads for the
// same user+role resolve to last-write-wins without partial states.
func (r *PostgresRepository) SetSlot(ctx context.Context, userID string, role upload.Role, uploadID int64) error {
	col, ok := slotColumns[role]
	if !ok {
		return fmt.Errorf("role %q has no avatar slot", role)
	}

	query := fmt.Sprintf(`
		INSERT INTO user_avatars (user_id, %[1]s)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET %[1]s = EXCLUDED.%[1]s, updated_at = CURRENT_TIMESTAMP;
	`, col)

	res, err := r.db.ExecContext(ctx, query, userID, uploadID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// Get returns the user's avatar row with both slot references.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.UserAvatar, error) {
	query := `SELECT user_id, custom_upload_id, gravatar_upload_id FROM user_avatars WHERE user_id = $1`

	a := &models.UserAvatar{}
	var custom, gravatar sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&a.UserID, &custom, &gravatar)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if custom.Valid {
		a.CustomUploadID = &custom.Int64
	}
	if gravatar.Valid {
		a.GravatarUploadID = &gravatar.Int64
	}
	return a, nil
}
