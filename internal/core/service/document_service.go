package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/vstdesk/rental-expense-manager/internal/api/metrics"
	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
	"github.com/vstdesk/rental-expense-manager/internal/core/ports"
)

// maxFilesPerUpload caps one multipart request.
const maxFilesPerUpload = 10

// DocumentService manages document metadata together with the blob store.
type DocumentService struct {
	repo  ports.DocumentRepository
	store ports.FileStore
	log   zerolog.Logger
}

func NewDocumentService(repo ports.DocumentRepository, store ports.FileStore, log zerolog.Logger) *DocumentService {
	return &DocumentService{repo: repo, store: store, log: log}
}

// Upload validates the entity binding, writes each blob, and persists one
// metadata record per file. Validation happens before any blob is written,
// so a rejected request creates zero records.
func (s *DocumentService) Upload(ctx context.Context, in ports.UploadInput) ([]*domain.Document, error) {
	entityType, err := domain.ParseEntityType(in.EntityType)
	if err != nil {
		return nil, err
	}
	if len(in.Files) == 0 {
		return nil, domain.ErrNoFiles
	}
	if len(in.Files) > maxFilesPerUpload {
		return nil, domain.ErrTooManyFiles
	}

	created := make([]*domain.Document, 0, len(in.Files))
	for _, f := range in.Files {
		name := generateFileName(f.OriginalName)

		path, size, err := s.store.Save(ctx, name, f.Content)
		if err != nil {
			return created, fmt.Errorf("save blob: %w", err)
		}

		doc := &domain.Document{
			FileName:     name,
			OriginalName: f.OriginalName,
			FilePath:     path,
			FileSize:     size,
			MimeType:     f.MimeType,
			EntityType:   entityType,
			EntityID:     in.EntityID,
			Description:  in.Description,
			Tags:         in.Tags,
			UploadedBy:   in.UploadedBy,
			UploadedAt:   time.Now().UTC(),
		}

		inserted, err := s.repo.Insert(ctx, doc)
		if err != nil {
			if rmErr := s.store.Remove(ctx, path); rmErr != nil {
				s.log.Warn().Err(rmErr).Str("path", path).Msg("failed to clean up blob after insert failure")
			}
			return created, fmt.Errorf("insert document: %w", err)
		}

		metrics.DocumentsUploadedTotal.WithLabelValues(string(entityType)).Inc()
		metrics.UploadBytesTotal.Add(float64(size))
		created = append(created, inserted)
	}

	s.log.Info().
		Str("entity_type", string(entityType)).
		Str("entity_id", in.EntityID).
		Int("count", len(created)).
		Msg("documents uploaded")

	return created, nil
}

func (s *DocumentService) List(ctx context.Context, entityType, entityID string) ([]*domain.Document, error) {
	et, err := domain.ParseEntityType(entityType)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByEntity(ctx, et, entityID)
}

func (s *DocumentService) Get(ctx context.Context, entityType, entityID, documentID string) (*domain.Document, error) {
	et, err := domain.ParseEntityType(entityType)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, et, entityID, documentID)
}

// Download resolves the metadata record and opens its blob. Metadata without
// a backing blob is surfaced as ErrFileMissing, never as a partial stream.
func (s *DocumentService) Download(ctx context.Context, entityType, entityID, documentID string) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, entityType, entityID, documentID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.store.Open(ctx, doc.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, domain.ErrFileMissing
		}
		return nil, nil, fmt.Errorf("open blob: %w", err)
	}
	return doc, rc, nil
}

// Delete removes the metadata record first, then the blob best-effort. A
// crash between the two steps leaves an unreferenced blob on disk rather
// than a metadata record pointing at nothing.
func (s *DocumentService) Delete(ctx context.Context, entityType, entityID, documentID string) error {
	doc, err := s.Get(ctx, entityType, entityID, documentID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, doc.EntityType, doc.EntityID, doc.ID); err != nil {
		return err
	}

	if err := s.store.Remove(ctx, doc.FilePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn().Err(err).Str("path", doc.FilePath).Msg("failed to remove blob for deleted document")
	}

	metrics.DocumentsDeletedTotal.Inc()
	s.log.Info().
		Str("entity_type", string(doc.EntityType)).
		Str("entity_id", doc.EntityID).
		Str("document_id", doc.ID).
		Msg("document deleted")

	return nil
}

// generateFileName returns the on-disk name for an upload: nanosecond
// timestamp plus random hex, keeping the original extension. The stored name
// is always distinct from the user-supplied one.
func generateFileName(originalName string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(originalName))
	}
	return fmt.Sprintf("%d-%x%s", time.Now().UnixNano(), b, filepath.Ext(originalName))
}
