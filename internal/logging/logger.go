// Package logging abstracts structured logging behind a small interface so
// the ingestion pipeline does not commit to a specific backend. The shipped
// implementation wraps log/slog.
package logging

import "context"

// Logger carries structured key-value logging through the pipeline. Args
// alternate keys and values, following the slog convention:
//
//	log.Warn(ctx, "transform failed, storing original bytes", "filename", name, "error", err)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger whose entries always carry the given pairs,
	// e.g. tagging every line of one ingestion with its digest.
	With(args ...any) Logger
}
