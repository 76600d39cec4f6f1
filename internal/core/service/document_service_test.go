package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
	"github.com/vstdesk/rental-expense-manager/internal/core/ports"
)

type stubDocumentRepo struct {
	docs   map[string]*domain.Document
	nextID int
}

func newStubDocumentRepo() *stubDocumentRepo {
	return &stubDocumentRepo{docs: make(map[string]*domain.Document)}
}

func cloneDoc(d *domain.Document) *domain.Document {
	clone := *d
	return &clone
}

func (r *stubDocumentRepo) Insert(_ context.Context, doc *domain.Document) (*domain.Document, error) {
	r.nextID++
	copy := cloneDoc(doc)
	copy.ID = fmt.Sprintf("doc_%d", r.nextID)
	r.docs[copy.ID] = cloneDoc(copy)
	return copy, nil
}

func (r *stubDocumentRepo) FindByEntity(_ context.Context, entityType domain.EntityType, entityID string) ([]*domain.Document, error) {
	out := []*domain.Document{}
	for _, d := range r.docs {
		if d.EntityType == entityType && d.EntityID == entityID {
			out = append(out, cloneDoc(d))
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) FindOne(_ context.Context, entityType domain.EntityType, entityID, documentID string) (*domain.Document, error) {
	d, ok := r.docs[documentID]
	if !ok || d.EntityType != entityType || d.EntityID != entityID {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDoc(d), nil
}

func (r *stubDocumentRepo) Delete(_ context.Context, entityType domain.EntityType, entityID, documentID string) error {
	d, ok := r.docs[documentID]
	if !ok || d.EntityType != entityType || d.EntityID != entityID {
		return domain.ErrDocumentNotFound
	}
	delete(r.docs, documentID)
	return nil
}

// memStore is an in-memory FileStore.
type memStore struct {
	blobs     map[string][]byte
	removeErr error
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (s *memStore) Save(_ context.Context, name string, content io.Reader) (string, int64, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", 0, err
	}
	path := "/mem/" + name
	s.blobs[path] = data
	return path, int64(len(data)), nil
}

func (s *memStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.blobs[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Remove(_ context.Context, path string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	if _, ok := s.blobs[path]; !ok {
		return fs.ErrNotExist
	}
	delete(s.blobs, path)
	return nil
}

func fileInput(name, content string) ports.FileInput {
	return ports.FileInput{
		OriginalName: name,
		MimeType:     "text/plain",
		Size:         int64(len(content)),
		Content:      strings.NewReader(content),
	}
}

func TestDocumentService_Upload_InvalidEntityType(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	_, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType: "car",
		EntityID:   "1",
		Files:      []ports.FileInput{fileInput("a.txt", "hello")},
	})
	if err != domain.ErrInvalidEntityType {
		t.Fatalf("expected ErrInvalidEntityType, got %v", err)
	}
	if len(repo.docs) != 0 || len(store.blobs) != 0 {
		t.Fatalf("rejected upload must not persist anything")
	}
}

func TestDocumentService_Upload_NoFiles(t *testing.T) {
	svc := NewDocumentService(newStubDocumentRepo(), newMemStore(), zerolog.Nop())

	_, err := svc.Upload(context.Background(), ports.UploadInput{EntityType: "shop", EntityID: "1"})
	if err != domain.ErrNoFiles {
		t.Fatalf("expected ErrNoFiles, got %v", err)
	}
}

func TestDocumentService_Upload_TooManyFiles(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	files := make([]ports.FileInput, maxFilesPerUpload+1)
	for i := range files {
		files[i] = fileInput(fmt.Sprintf("f%d.txt", i), "x")
	}

	_, err := svc.Upload(context.Background(), ports.UploadInput{EntityType: "shop", EntityID: "1", Files: files})
	if err != domain.ErrTooManyFiles {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
	if len(store.blobs) != 0 {
		t.Fatalf("rejected upload must not write blobs")
	}
}

func TestDocumentService_Upload_Success(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	docs, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType:  "Shop", // mixed case must be accepted
		EntityID:    "42",
		Description: "lease papers",
		UploadedBy:  "user_1",
		Files: []ports.FileInput{
			fileInput("lease.pdf", "pdf-bytes"),
			fileInput("photo.jpg", "jpg-bytes"),
		},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].FileName == docs[1].FileName {
		t.Fatalf("expected distinct stored names")
	}
	for _, d := range docs {
		if d.EntityType != domain.EntityShop {
			t.Fatalf("expected entity type shop, got %s", d.EntityType)
		}
		if d.FileName == d.OriginalName {
			t.Fatalf("stored name must differ from the original")
		}
		if d.UploadedBy != "user_1" {
			t.Fatalf("expected uploader user_1, got %q", d.UploadedBy)
		}
	}
	if !strings.HasSuffix(docs[0].FileName, ".pdf") {
		t.Fatalf("expected original extension kept, got %q", docs[0].FileName)
	}
	if docs[0].FileSize != int64(len("pdf-bytes")) {
		t.Fatalf("unexpected size: %d", docs[0].FileSize)
	}
	if len(store.blobs) != 2 {
		t.Fatalf("expected 2 blobs, got %d", len(store.blobs))
	}
}

func TestDocumentService_EntityScoping(t *testing.T) {
	repo := newStubDocumentRepo()
	svc := NewDocumentService(repo, newMemStore(), zerolog.Nop())

	docs, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType: "shop",
		EntityID:   "1",
		Files:      []ports.FileInput{fileInput("a.txt", "a")},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	id := docs[0].ID

	// The same document id must be unreachable under any other entity pairing.
	if _, err := svc.Get(context.Background(), "apartment", "1", id); err != domain.ErrDocumentNotFound {
		t.Fatalf("expected ErrDocumentNotFound for wrong entity type, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "shop", "2", id); err != domain.ErrDocumentNotFound {
		t.Fatalf("expected ErrDocumentNotFound for wrong entity id, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "shop", "1", id); err != nil {
		t.Fatalf("expected document under its own entity, got %v", err)
	}

	other, err := svc.List(context.Background(), "apartment", "1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no documents under apartment/1, got %d", len(other))
	}
}

func TestDocumentService_Download(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	docs, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType: "expense",
		EntityID:   "7",
		Files:      []ports.FileInput{fileInput("receipt.png", "png-bytes")},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	doc, rc, err := svc.Download(context.Background(), "expense", "7", docs[0].ID)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content: %q", data)
	}
	if doc.ID != docs[0].ID {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestDocumentService_Download_FileMissing(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	docs, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType: "booking",
		EntityID:   "3",
		Files:      []ports.FileInput{fileInput("b.txt", "b")},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	// Simulate a blob lost outside the application.
	delete(store.blobs, docs[0].FilePath)

	if _, _, err := svc.Download(context.Background(), "booking", "3", docs[0].ID); err != domain.ErrFileMissing {
		t.Fatalf("expected ErrFileMissing, got %v", err)
	}
}

func TestDocumentService_Delete(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	docs, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType: "waterbill",
		EntityID:   "9",
		Files:      []ports.FileInput{fileInput("bill.pdf", "bill")},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := svc.Delete(context.Background(), "waterbill", "9", docs[0].ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), "waterbill", "9", docs[0].ID); err != domain.ErrDocumentNotFound {
		t.Fatalf("expected document gone, got %v", err)
	}
	if len(store.blobs) != 0 {
		t.Fatalf("expected blob removed")
	}
}

func TestDocumentService_Delete_MissingBlobStillDeletesMetadata(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	docs, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType: "currentbill",
		EntityID:   "5",
		Files:      []ports.FileInput{fileInput("c.txt", "c")},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	delete(store.blobs, docs[0].FilePath)

	if err := svc.Delete(context.Background(), "currentbill", "5", docs[0].ID); err != nil {
		t.Fatalf("delete with missing blob must succeed, got %v", err)
	}
	if len(repo.docs) != 0 {
		t.Fatalf("expected metadata removed")
	}
}

func TestDocumentService_Delete_BlobFailureDoesNotResurrectMetadata(t *testing.T) {
	repo := newStubDocumentRepo()
	store := newMemStore()
	svc := NewDocumentService(repo, store, zerolog.Nop())

	docs, err := svc.Upload(context.Background(), ports.UploadInput{
		EntityType: "shop",
		EntityID:   "1",
		Files:      []ports.FileInput{fileInput("d.txt", "d")},
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	store.removeErr = errors.New("disk unplugged")

	// Blob removal is best-effort; the metadata delete must stand.
	if err := svc.Delete(context.Background(), "shop", "1", docs[0].ID); err != nil {
		t.Fatalf("delete must tolerate blob removal failure, got %v", err)
	}
	if len(repo.docs) != 0 {
		t.Fatalf("expected metadata removed despite blob failure")
	}
}
