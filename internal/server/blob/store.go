// Package blob abstracts the physical byte storage behind the upload
// pipeline. Keys are content-addressed paths such as
// "original/<sha256>.<ext>", so writing the same key twice is always
// writing the same bytes.
package blob

import "context"

// Store persists raw upload bytes and resolves keys to retrieval URLs.
type Store interface {
	// Put writes data under key and returns the retrieval URL. Put must be
	// idempotent per key: rewriting an existing key is harmless.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// URL returns the retrieval locator for a key without writing anything.
	URL(key string) string
}
