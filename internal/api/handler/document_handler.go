package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vstdesk/rental-expense-manager/internal/core/ports"
)

// uploadField is the multipart form field carrying the files.
const uploadField = "documents"

// DocumentHandler handles HTTP requests for entity-scoped documents.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Upload handles POST /:entityType/:entityId/documents.
//
// @Summary      Upload documents for an entity
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        entityType   path      string  true   "Entity type (shop, apartment, booking, waterbill, currentbill, expense)"
// @Param        entityId     path      string  true   "Entity id"
// @Param        documents    formData  file    true   "Files to attach (max 10)"
// @Param        description  formData  string  false  "Optional description"
// @Param        tags         formData  string  false  "Optional comma-separated tags"
// @Success      201  {object}  documentUploadResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /{entityType}/{entityId}/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	headers := form.File[uploadField]
	files := make([]ports.FileInput, 0, len(headers))
	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open uploaded file: %w", err)
		}
		defer src.Close()

		files = append(files, ports.FileInput{
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get(echo.HeaderContentType),
			Size:         fh.Size,
			Content:      src,
		})
	}

	docs, err := h.service.Upload(c.Request().Context(), ports.UploadInput{
		EntityType:  c.Param("entityType"),
		EntityID:    c.Param("entityId"),
		Files:       files,
		Description: c.FormValue("description"),
		Tags:        c.FormValue("tags"),
		UploadedBy:  user.ID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, documentUploadResponse{
		Message: fmt.Sprintf("%d document(s) uploaded successfully", len(docs)),
		Count:   len(docs),
		Data:    toDocumentResponses(docs),
	})
}

// List handles GET /:entityType/:entityId/documents.
//
// @Summary      List documents for an entity
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        entityType  path  string  true  "Entity type"
// @Param        entityId    path  string  true  "Entity id"
// @Success      200  {object}  documentListResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /{entityType}/{entityId}/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context(), c.Param("entityType"), c.Param("entityId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, documentListResponse{
		Count: len(docs),
		Data:  toDocumentResponses(docs),
	})
}

// Get handles GET /:entityType/:entityId/documents/:documentId.
//
// @Summary      Get one document's metadata
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        entityType  path  string  true  "Entity type"
// @Param        entityId    path  string  true  "Entity id"
// @Param        documentId  path  string  true  "Document id"
// @Success      200  {object}  documentGetResponse
// @Failure      404  {object}  errorResponse
// @Router       /{entityType}/{entityId}/documents/{documentId} [get]
func (h *DocumentHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context(), c.Param("entityType"), c.Param("entityId"), c.Param("documentId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, documentGetResponse{Data: toDocumentResponse(doc)})
}

// Download handles GET /:entityType/:entityId/documents/:documentId/download.
// Failures are rendered as JSON by the error handler; the binary stream only
// starts once the blob has been opened successfully.
//
// @Summary      Download a document
// @Tags         documents
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        entityType  path  string  true  "Entity type"
// @Param        entityId    path  string  true  "Entity id"
// @Param        documentId  path  string  true  "Document id"
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Router       /{entityType}/{entityId}/documents/{documentId}/download [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	doc, blob, err := h.service.Download(c.Request().Context(), c.Param("entityType"), c.Param("entityId"), c.Param("documentId"))
	if err != nil {
		return err
	}
	defer blob.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, doc.OriginalName))
	return c.Stream(http.StatusOK, doc.MimeType, blob)
}

// Delete handles DELETE /:entityType/:entityId/documents/:documentId.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        entityType  path  string  true  "Entity type"
// @Param        entityId    path  string  true  "Entity id"
// @Param        documentId  path  string  true  "Document id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /{entityType}/{entityId}/documents/{documentId} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("entityType"), c.Param("entityId"), c.Param("documentId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "document deleted successfully"})
}
