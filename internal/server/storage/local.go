package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cmskeeper/internal/filex"
)

// LocalStore keeps blobs as plain files in a single directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// over it.
func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{dir: abs}, nil
}

func (s *LocalStore) Save(ctx context.Context, filename string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return err
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, filename))
}

func (s *LocalStore) Remove(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(s.dir, filename))
}
