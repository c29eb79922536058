// Package services contains the server-side orchestration of the upload
// pipeline: sniff, resolve, transform, store, record, link.
package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/uploadvault/internal/common"
	"github.com/dmitrijs2005/uploadvault/internal/logging"
	"github.com/dmitrijs2005/uploadvault/internal/server/blob"
	"github.com/dmitrijs2005/uploadvault/internal/server/models"
	"github.com/dmitrijs2005/uploadvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/uploadvault/internal/upload"
)

// UploadService runs the full ingestion pipeline for one upload request.
// The pure stages (sniff, name resolution, transform) are stateless; the
// only shared state is the content-addressed store and the per-user
// avatar slots, both guarded at the database boundary.
type UploadService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	cfg         upload.Config
	transformer *upload.Transformer
	logger      logging.Logger

	// group collapses concurrent in-process requests for the same digest
	// into one blob write and one record insert. Cross-process races are
	// resolved by the repository's conditional insert.
	group singleflight.Group
}

func NewUploadService(db *sql.DB, rm repomanager.RepositoryManager, blobs blob.Store, cfg upload.Config, logger logging.Logger) *UploadService {
	return &UploadService{
		db:          db,
		repomanager: rm,
		blobs:       blobs,
		cfg:         cfg,
		transformer: upload.NewTransformer(cfg),
		logger:      logger,
	}
}

// CreateFor ingests one upload for userID and returns its durable record.
//
// Validation errors (empty payload, empty filename, unauthorized
// extension) reject the request before any storage I/O. Transform
// failures fall back to storing the original bytes. Storage failures are
// surfaced as common.ErrStorageFailed with no record left behind. A
// linkage failure after a successful store is surfaced as
// common.ErrLinkFailed together with the valid record, so the caller can
// retry just the linkage.
func (s *UploadService) CreateFor(ctx context.Context, userID, filename string, data []byte, opts upload.Options) (*models.Upload, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("upload %q: %w", filename, common.ErrEmptyPayload)
	}

	kind := upload.Sniff(data)

	name, err := upload.ResolveName(filename, kind, s.cfg.AllowedExtensions)
	if err != nil {
		return nil, err
	}
	if !s.cfg.AllowedExtensions.Contains(name.Ext) {
		return nil, fmt.Errorf("extension %q: %w", name.Ext, common.ErrExtensionNotAllowed)
	}

	res, err := s.transformer.Transform(data, name, kind, opts)
	if err != nil {
		// Degrade to the original bytes rather than failing the upload.
		s.logger.Warn(ctx, "transform failed, storing original bytes",
			"filename", name.Filename(), "kind", kind.String(), "error", err)
		res = upload.TransformResult{Data: data, Ext: name.Ext, Filename: name.Filename(), Kind: kind}
	}

	sum := sha256.Sum256(res.Data)
	digest := hex.EncodeToString(sum[:])

	v, err, _ := s.group.Do(digest, func() (any, error) {
		return s.findOrStore(ctx, userID, digest, res)
	})
	if err != nil {
		return nil, err
	}
	upl := v.(*models.Upload)

	if opts.Type.HasSlot() {
		if err := s.repomanager.Avatars(s.db).SetSlot(ctx, userID, opts.Type, upl.ID); err != nil {
			s.logger.Error(ctx, "slot link failed",
				"user", userID, "role", string(opts.Type), "upload", upl.ID, "error", err)
			return upl, fmt.Errorf("link %s for user %s (sha256 %s): %v: %w",
				opts.Type, userID, digest, err, common.ErrLinkFailed)
		}
	}

	return upl, nil
}

// findOrStore resolves a digest to its upload record, creating blob and
// record when the content is new. The blob write precedes the record
// insert: an abandoned request can orphan bytes (collected later), but a
// record never points at missing bytes.
func (s *UploadService) findOrStore(ctx context.Context, userID, digest string, res upload.TransformResult) (*models.Upload, error) {
	repo := s.repomanager.Uploads(s.db)

	existing, err := repo.FindBySHA256(ctx, digest)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("lookup sha256 %s: %v: %w", digest, err, common.ErrStorageFailed)
	}

	key := "original/" + digest + "." + res.Ext
	url, err := s.blobs.Put(ctx, key, res.Data, res.Kind.MIME())
	if err != nil {
		return nil, fmt.Errorf("store blob %s: %v: %w", key, err, common.ErrStorageFailed)
	}

	width, height := upload.Dimensions(res.Data, res.Kind)

	u := &models.Upload{
		UserID:           userID,
		SHA256:           digest,
		Extension:        res.Ext,
		OriginalFilename: res.Filename,
		URL:              url,
		ByteSize:         int64(len(res.Data)),
		Width:            width,
		Height:           height,
	}

	stored, created, err := repo.FindOrCreate(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("record sha256 %s: %v: %w", digest, err, common.ErrStorageFailed)
	}
	if created {
		s.logger.Info(ctx, "stored upload",
			"sha256", digest, "ext", stored.Extension, "bytes", stored.ByteSize)
	}
	return stored, nil
}
