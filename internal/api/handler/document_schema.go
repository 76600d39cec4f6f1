package handler

import (
	"time"

	"github.com/vstdesk/rental-expense-manager/internal/core/domain"
)

// documentResponse is the transport view of a document record. FilePath is
// deliberately absent: the on-disk layout is not part of the API contract.
type documentResponse struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	Description  string    `json:"description,omitempty"`
	Tags         string    `json:"tags,omitempty"`
	UploadedBy   string    `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type documentListResponse struct {
	Count int                 `json:"count"`
	Data  []*documentResponse `json:"data"`
}

type documentUploadResponse struct {
	Message string              `json:"message"`
	Count   int                 `json:"count"`
	Data    []*documentResponse `json:"data"`
}

type documentGetResponse struct {
	Data *documentResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toDocumentResponse(d *domain.Document) *documentResponse {
	return &documentResponse{
		ID:           d.ID,
		FileName:     d.FileName,
		OriginalName: d.OriginalName,
		FileSize:     d.FileSize,
		MimeType:     d.MimeType,
		EntityType:   string(d.EntityType),
		EntityID:     d.EntityID,
		Description:  d.Description,
		Tags:         d.Tags,
		UploadedBy:   d.UploadedBy,
		UploadedAt:   d.UploadedAt,
	}
}

func toDocumentResponses(docs []*domain.Document) []*documentResponse {
	out := make([]*documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out
}
