package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/uploadvault/internal/dbx"
	"github.com/dmitrijs2005/uploadvault/internal/server/repositories/avatars"
	"github.com/dmitrijs2005/uploadvault/internal/server/repositories/uploads"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Uploads(db dbx.DBTX) uploads.Repository
	Avatars(db dbx.DBTX) avatars.Repository
}
