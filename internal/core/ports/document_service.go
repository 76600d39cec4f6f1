package ports

import (
	"context"
	"io"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

// FileInput is one file received in a multipart upload.
type FileInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// UploadInput carries a batch of files bound to one entity.
type UploadInput struct {
	EntityType  string
	EntityID    string
	Files       []FileInput
	Description string
	Tags        string
	UploadedBy  string
}

type DocumentService interface {
	Upload(ctx context.Context, in UploadInput) ([]*domain.Document, error)
	List(ctx context.Context, entityType, entityID string) ([]*domain.Document, error)
	Get(ctx context.Context, entityType, entityID, documentID string) (*domain.Document, error)
	// Download resolves the metadata and opens the blob for streaming.
	// The caller owns the returned ReadCloser.
	Download(ctx context.Context, entityType, entityID, documentID string) (*domain.Document, io.ReadCloser, error)
	Delete(ctx context.Context, entityType, entityID, documentID string) error
}
