package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

const documentsCollection = "documents"

type DocumentRepository struct {
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{coll: db.Collection(documentsCollection)}
}

type mongoDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FileName     string             `bson:"file_name"`
	OriginalName string             `bson:"original_name"`
	FilePath     string             `bson:"file_path"`
	FileSize     int64              `bson:"file_size"`
	MimeType     string             `bson:"mime_type"`
	EntityType   string             `bson:"entity_type"`
	EntityID     string             `bson:"entity_id"`
	Description  string             `bson:"description,omitempty"`
	Tags         string             `bson:"tags,omitempty"`
	UploadedBy   string             `bson:"uploaded_by"`
	UploadedAt   time.Time          `bson:"uploaded_at"`
}

func (m mongoDocument) toDomain() *domain.Document {
	return &domain.Document{
		ID:           m.ID.Hex(),
		FileName:     m.FileName,
		OriginalName: m.OriginalName,
		FilePath:     m.FilePath,
		FileSize:     m.FileSize,
		MimeType:     m.MimeType,
		EntityType:   domain.EntityType(m.EntityType),
		EntityID:     m.EntityID,
		Description:  m.Description,
		Tags:         m.Tags,
		UploadedBy:   m.UploadedBy,
		UploadedAt:   m.UploadedAt.UTC(),
	}
}

func (r *DocumentRepository) Insert(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	md := mongoDocument{
		FileName:     doc.FileName,
		OriginalName: doc.OriginalName,
		FilePath:     doc.FilePath,
		FileSize:     doc.FileSize,
		MimeType:     doc.MimeType,
		EntityType:   string(doc.EntityType),
		EntityID:     doc.EntityID,
		Description:  doc.Description,
		Tags:         doc.Tags,
		UploadedBy:   doc.UploadedBy,
		UploadedAt:   doc.UploadedAt,
	}

	res, err := r.coll.InsertOne(ctx, md)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	created := *doc
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByEntity returns all documents scoped to (entityType, entityID),
// newest first.
func (r *DocumentRepository) FindByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.Document, error) {
	filter := bson.M{"entity_type": string(entityType), "entity_id": entityID}
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer cur.Close(ctx)

	docs := []*domain.Document{}
	for cur.Next(ctx) {
		var md mongoDocument
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = append(docs, md.toDomain())
	}
	return docs, cur.Err()
}

// FindOne always filters on the full (entityType, entityID, id) triple.
func (r *DocumentRepository) FindOne(ctx context.Context, entityType domain.EntityType, entityID, documentID string) (*domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return nil, domain.ErrDocumentNotFound
	}

	filter := bson.M{
		"_id":         oid,
		"entity_type": string(entityType),
		"entity_id":   entityID,
	}

	var md mongoDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return md.toDomain(), nil
}

func (r *DocumentRepository) Delete(ctx context.Context, entityType domain.EntityType, entityID, documentID string) error {
	oid, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return domain.ErrDocumentNotFound
	}

	filter := bson.M{
		"_id":         oid,
		"entity_type": string(entityType),
		"entity_id":   entityID,
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// EnsureIndexes creates the compound index used by every entity-scoped query.
func (r *DocumentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "entity_type", Value: 1},
			{Key: "entity_id", Value: 1},
			{Key: "uploaded_at", Value: -1},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
