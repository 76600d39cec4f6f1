package ports

import (
	"context"
	"io"
)

// FileStore abstracts blob storage for uploaded documents. Implementations
// must return an error satisfying errors.Is(err, fs.ErrNotExist) from Open
// and Remove when the blob is absent, so callers can distinguish a missing
// blob from an I/O failure.
type FileStore interface {
	// Save writes the blob under name and returns its full path and size.
	Save(ctx context.Context, name string, content io.Reader) (path string, size int64, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
