package saveddocs

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"careerdraft-backend/internal/document"
	"careerdraft-backend/internal/shared/server/middleware"
	"careerdraft-backend/internal/shared/server/respond"
)

// PDFRenderer renders a classified document into a PDF.
type PDFRenderer interface {
	Render(ctx context.Context, doc document.Document, title string) ([]byte, error)
}

// Mailer delivers a document as an email attachment.
type Mailer interface {
	SendWithAttachment(ctx context.Context, to, subject, body string, attachment []byte, filename string) (messageID string, previewURL string, err error)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	Renderer PDFRenderer
	Mailer   Mailer
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, renderer PDFRenderer, mailer Mailer) *Handler {
	return &Handler{Svc: svc, Renderer: renderer, Mailer: mailer}
}

// RegisterRoutes attaches saved-document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.create)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.DELETE("/documents/:id", h.delete)
	rg.GET("/documents/:id/pdf", h.pdf)
	rg.POST("/documents/:id/email", h.email)
}

// DocumentResponse is the outward-facing representation of a saved document.
type DocumentResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"documentType"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type createRequest struct {
	DocumentType string `json:"documentType"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

type emailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	kind, err := document.ParseKind(req.DocumentType)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	doc, err := h.Svc.Save(c.Request.Context(), userID, kind, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save document", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	docs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toResponse(doc))
	}
	respond.OK(c, gin.H{"documents": out})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, ok := h.load(c, userID)
	if !ok {
		return
	}
	respond.OK(c, toResponse(doc))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondRepoError(c, err, "failed to delete document")
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) pdf(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, ok := h.load(c, userID)
	if !ok {
		return
	}

	parsed, err := document.PostProcess(doc.Content, doc.Kind)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "empty_document", "document has no renderable content", nil)
		return
	}
	pdfBytes, err := h.Renderer.Render(c.Request.Context(), parsed, doc.Title)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render PDF", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdfFilename(doc)+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *Handler) email(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "recipient address is required", nil)
		return
	}

	doc, ok := h.load(c, userID)
	if !ok {
		return
	}

	parsed, err := document.PostProcess(doc.Content, doc.Kind)
	if err != nil {
		respond.Error(c, http.StatusUnprocessableEntity, "empty_document", "document has no renderable content", nil)
		return
	}
	pdfBytes, err := h.Renderer.Render(c.Request.Context(), parsed, doc.Title)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render PDF", nil)
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "Your " + kindLabel(doc.Kind) + " from CareerDraft"
	}
	messageID, previewURL, err := h.Mailer.SendWithAttachment(
		c.Request.Context(), req.To, subject, req.Message, pdfBytes, pdfFilename(doc))
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "email_failed", "failed to send email", nil)
		return
	}

	resp := gin.H{"success": true, "messageId": messageID}
	if previewURL != "" {
		resp["previewUrl"] = previewURL
	}
	respond.OK(c, resp)
}

func (h *Handler) load(c *gin.Context, userID string) (SavedDocument, bool) {
	doc, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondRepoError(c, err, "failed to load document")
		return SavedDocument{}, false
	}
	return doc, true
}

func (h *Handler) respondRepoError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func toResponse(doc SavedDocument) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID,
		Type:      string(doc.Kind),
		Title:     doc.Title,
		Content:   doc.Content,
		CreatedAt: doc.CreatedAt,
	}
}

func kindLabel(kind document.Kind) string {
	if kind == document.KindCoverLetter {
		return "cover letter"
	}
	return "resume"
}

func pdfFilename(doc SavedDocument) string {
	return string(doc.Kind) + "-" + doc.ID + ".pdf"
}
