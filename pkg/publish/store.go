package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/weft-dev/weft/internal/errors"
)

// Store receives published page files.
type Store interface {
	// Put writes one file at the given slash-separated path.
	Put(ctx context.Context, path string, contentType string, data []byte) error
}

// DiskStore writes published files under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates a store rooted at dir. The directory is created
// on first Put.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// Root returns the store's root directory.
func (s *DiskStore) Root() string { return s.root }

// Put writes data to root/path, creating parent directories as needed.
func (s *DiskStore) Put(ctx context.Context, path string, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.FromError(err, "E120")
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return errors.FromError(err, "E120")
	}
	return nil
}
