package domain

import (
	"errors"
	"strings"
	"time"
)

// EntityType is the fixed category a document can be attached to.
type EntityType string

const (
	EntityShop        EntityType = "shop"
	EntityApartment   EntityType = "apartment"
	EntityBooking     EntityType = "booking"
	EntityWaterBill   EntityType = "waterbill"
	EntityCurrentBill EntityType = "currentbill"
	EntityExpense     EntityType = "expense"
)

// EntityTypes lists every valid entity type, in the order they are reported
// in validation messages.
var EntityTypes = []EntityType{
	EntityShop, EntityApartment, EntityBooking,
	EntityWaterBill, EntityCurrentBill, EntityExpense,
}

var ErrInvalidEntityType = errors.New("invalid entity type")
var ErrDocumentNotFound = errors.New("document not found")
var ErrFileMissing = errors.New("file not found on disk")
var ErrNoFiles = errors.New("no files were uploaded")
var ErrTooManyFiles = errors.New("too many files in one request")

// ParseEntityType normalises and validates a raw entity type string.
func ParseEntityType(raw string) (EntityType, error) {
	et := EntityType(strings.ToLower(raw))
	for _, valid := range EntityTypes {
		if et == valid {
			return et, nil
		}
	}
	return "", ErrInvalidEntityType
}

// Document is the metadata record for one uploaded file. The blob itself
// lives outside the database, keyed by FileName.
//
// Every lookup filters on (EntityType, EntityID) together with the document
// id: a document must never be reachable under the wrong entity pairing even
// when the id alone matches.
type Document struct {
	ID           string     `json:"id"`
	FileName     string     `json:"file_name"`
	OriginalName string     `json:"original_name"`
	FilePath     string     `json:"-"`
	FileSize     int64      `json:"file_size"`
	MimeType     string     `json:"mime_type"`
	EntityType   EntityType `json:"entity_type"`
	EntityID     string     `json:"entity_id"`
	Description  string     `json:"description,omitempty"`
	Tags         string     `json:"tags,omitempty"`
	UploadedBy   string     `json:"uploaded_by"`
	UploadedAt   time.Time  `json:"uploaded_at"`
}
