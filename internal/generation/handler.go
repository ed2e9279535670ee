package generation

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"careerdraft-backend/internal/document"
	"careerdraft-backend/internal/shared/server/middleware"
	"careerdraft-backend/internal/shared/server/respond"
)

const kindBoth = "both"

// Handler exposes the generation endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

type generateRequest struct {
	JobDescription string `json:"jobDescription"`
	DocumentType   string `json:"documentType"`
}

// GenerateResponse is a single generated document.
type GenerateResponse struct {
	Content  string            `json:"content"`
	Document document.Document `json:"document"`
}

// BothResponse pairs the two documents of a combined generation.
type BothResponse struct {
	Resume      GenerateResponse `json:"resume"`
	CoverLetter GenerateResponse `json:"coverLetter"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	c.Set("documentType", req.DocumentType)

	if req.DocumentType == kindBoth {
		h.generateBoth(c, userID, req.JobDescription)
		return
	}

	kind, err := document.ParseKind(req.DocumentType)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	res, err := h.Svc.Generate(c.Request.Context(), userID, kind, req.JobDescription)
	if err != nil {
		h.respondGenerateError(c, err)
		return
	}
	respond.OK(c, GenerateResponse{Content: res.Content, Document: res.Document})
}

// generateBoth runs the two generations concurrently; either failure fails
// the whole request.
func (h *Handler) generateBoth(c *gin.Context, userID, jobDescription string) {
	var (
		resumeRes Result
		letterRes Result
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		resumeRes, err = h.Svc.Generate(ctx, userID, document.KindResume, jobDescription)
		return err
	})
	g.Go(func() error {
		var err error
		letterRes, err = h.Svc.Generate(ctx, userID, document.KindCoverLetter, jobDescription)
		return err
	})
	if err := g.Wait(); err != nil {
		h.respondGenerateError(c, err)
		return
	}

	respond.OK(c, BothResponse{
		Resume:      GenerateResponse{Content: resumeRes.Content, Document: resumeRes.Document},
		CoverLetter: GenerateResponse{Content: letterRes.Content, Document: letterRes.Document},
	})
}

func (h *Handler) respondGenerateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, document.ErrInvalidKind):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, document.ErrEmptyCompletion), errors.Is(err, ErrProviderFailure):
		respond.Error(c, http.StatusBadGateway, "provider_error", "failed to generate content", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, respond.StatusClientClosedRequest, "request_cancelled", "request cancelled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate content", nil)
	}
}
