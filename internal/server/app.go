// Package server wires the upload pipeline together: configuration,
// database, blob storage, and the upload service.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/uploadvault/internal/logging"
	"github.com/dmitrijs2005/uploadvault/internal/server/blob"
	"github.com/dmitrijs2005/uploadvault/internal/server/config"
	"github.com/dmitrijs2005/uploadvault/internal/server/models"
	"github.com/dmitrijs2005/uploadvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/uploadvault/internal/server/services"
	"github.com/dmitrijs2005/uploadvault/internal/upload"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	uploads *services.UploadService
}

// NewApp builds the application: opens the database, runs schema
// migrations, selects the blob backend, and constructs the upload service.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	uploads := services.NewUploadService(db, rm, blobs, cfg.Pipeline(), logger)

	return &App{config: cfg, logger: logger, db: db, uploads: uploads}, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendLocal:
		return blob.NewLocalStore(cfg.LocalBlobDir, cfg.BaseURL)
	case config.BlobBackendS3:
		return blob.NewS3Store(ctx, blob.S3Config{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.BlobBackend)
	}
}

// Uploads exposes the upload service.
func (a *App) Uploads() *services.UploadService {
	return a.uploads
}

// IngestFile reads a file from disk and runs it through the pipeline on
// behalf of userID, using the file's base name as the claimed filename.
func (a *App) IngestFile(ctx context.Context, userID, path string, opts upload.Options) (*models.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return a.uploads.CreateFor(ctx, userID, filepath.Base(path), data, opts)
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}
