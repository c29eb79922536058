package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps blobs on the local filesystem under a base directory,
// mirroring the key layout, and serves URLs relative to a base URL path.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put writes data to a unique temp file and renames it into place, so a
// concurrent reader never observes a partially written blob and rewriting
// an existing key is safe.
func (s *LocalStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create key dir: %w", err)
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalize blob: %w", err)
	}

	return s.URL(key), nil
}

// URL maps a key to its public path under the configured base URL.
func (s *LocalStore) URL(key string) string {
	return s.baseURL + "/" + key
}
