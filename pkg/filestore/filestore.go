// Package filestore persists uploaded files on the local filesystem.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store accepts validated upload content under a generated name.
type Store interface {
	Save(name string, r io.Reader) error
}

// DiskStore writes files under a single configured directory. Names are
// flattened to their base so a crafted filename cannot escape the directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(name string, r io.Reader) error {
	path := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("filestore: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("filestore: write %s: %w", path, err)
	}
	return nil
}
