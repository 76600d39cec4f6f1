// Package storage provides the filesystem-backed blob store for uploaded
// documents. Blobs are written under a single base directory using the
// generated on-disk name, never the user-supplied filename.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore implements ports.FileStore on the local filesystem.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates the base directory if needed and returns the store.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Save writes content under name and returns the stored path and byte count.
// A partially written file is removed on failure.
func (d *DiskStore) Save(_ context.Context, name string, content io.Reader) (string, int64, error) {
	path := filepath.Join(d.baseDir, filepath.Base(name))

	dst, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create blob: %w", err)
	}

	size, err := io.Copy(dst, content)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write blob: %w", err)
	}

	return path, size, nil
}

// Open returns the blob at path. A missing blob satisfies
// errors.Is(err, fs.ErrNotExist).
func (d *DiskStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Remove deletes the blob at path. A missing blob satisfies
// errors.Is(err, fs.ErrNotExist).
func (d *DiskStore) Remove(_ context.Context, path string) error {
	return os.Remove(path)
}
