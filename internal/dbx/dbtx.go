// Package dbx holds the database handle abstraction shared by the
// repositories. Repositories accept a DBTX rather than *sql.DB so callers
// can hand them either a plain connection pool or an open transaction
// without the repository knowing the difference.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the execution surface the repositories need: context-aware
// statement execution and row queries.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
