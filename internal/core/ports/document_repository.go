package ports

import (
	"context"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

// DocumentRepository defines the interface for document metadata persistence.
// Every read and delete takes the full (entityType, entityID, documentID)
// triple so a record is never reachable under the wrong entity pairing.
type DocumentRepository interface {
	Insert(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	// FindByEntity returns all documents for the entity, newest first.
	FindByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.Document, error)
	FindOne(ctx context.Context, entityType domain.EntityType, entityID, documentID string) (*domain.Document, error)
	Delete(ctx context.Context, entityType domain.EntityType, entityID, documentID string) error
}
