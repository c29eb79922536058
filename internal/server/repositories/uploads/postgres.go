package uploads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/uploadvault/internal/common"
	"github.com/dmitrijs2005/uploadvault/internal/dbx"
	"github.com/dmitrijs2005/uploadvault/internal/server/models"
)

// PostgresRepository implements upload storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, user_id, sha256, extension, original_filename, url, byte_size, width, height`

// FindBySHA256 returns the upload record for the given hex digest.
// Absence is reported as common.ErrNotFound.
func (r *PostgresRepository) FindBySHA256(ctx context.Context, digest string) (*models.Upload, error) {
	query := `SELECT ` + selectColumns + ` FROM uploads WHERE sha256 = $1`

	u := &models.Upload{}
	err := r.db.QueryRowContext(ctx, query, digest).Scan(
		&u.ID, &u.UserID, &u.SHA256, &u.Extension, &u.OriginalFilename,
		&u.URL, &u.ByteSize, &u.Width, &u.Height)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

// FindOrCreate inserts u keyed by its sha256 digest. The insert is
// conditional on the unique digest index: when another request already
// created a record for the same content, the insert affects no rows and
// the existing record is fetched instead. The fetch is retried briefly
// because a conflicting transaction may not have committed yet.
func (r *PostgresRepository) FindOrCreate(ctx context.Context, u *models.Upload) (*models.Upload, bool, error) {
	query := `
		INSERT INTO uploads (user_id, sha256, extension, original_filename, url, byte_size, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (sha256) DO NOTHING
		RETURNING id;
	`
	err := r.db.QueryRowContext(ctx, query,
		u.UserID, u.SHA256, u.Extension, u.OriginalFilename, u.URL, u.ByteSize, u.Width, u.Height).
		Scan(&u.ID)
	if err == nil {
		return u, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	// Lost the race: a record for this digest exists or is being committed.
	var existing *models.Upload
	backoff := retry.WithMaxRetries(5, retry.NewConstant(20*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		found, ferr := r.FindBySHA256(ctx, u.SHA256)
		if errors.Is(ferr, common.ErrNotFound) {
			return retry.RetryableError(ferr)
		}
		if ferr != nil {
			return ferr
		}
		existing = found
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("fetch after conflict on %s: %w", u.SHA256, err)
	}
	return existing, false, nil
}
