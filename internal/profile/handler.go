package profile

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careerdraft-backend/internal/shared/server/middleware"
	"careerdraft-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.put)
}

// ProfileResponse is the outward-facing representation of a profile.
type ProfileResponse struct {
	FullName        string    `json:"fullName"`
	JobTitle        string    `json:"jobTitle"`
	Skills          []string  `json:"skills"`
	WorkExperience  string    `json:"workExperience"`
	Education       string    `json:"education,omitempty"`
	ContactEmail    string    `json:"contactEmail,omitempty"`
	ContactPhone    string    `json:"contactPhone,omitempty"`
	ContactLocation string    `json:"contactLocation,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type putRequest struct {
	FullName        string   `json:"fullName"`
	JobTitle        string   `json:"jobTitle"`
	Skills          []string `json:"skills"`
	WorkExperience  string   `json:"workExperience"`
	Education       string   `json:"education"`
	ContactEmail    string   `json:"contactEmail"`
	ContactPhone    string   `json:"contactPhone"`
	ContactLocation string   `json:"contactLocation"`
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	p, err := h.Svc.GetByUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.OK(c, toResponse(p))
}

func (h *Handler) put(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req putRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.Save(c.Request.Context(), Profile{
		UserID:          userID,
		FullName:        req.FullName,
		JobTitle:        req.JobTitle,
		Skills:          req.Skills,
		WorkExperience:  req.WorkExperience,
		Education:       req.Education,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		ContactLocation: req.ContactLocation,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		}
		return
	}

	respond.OK(c, toResponse(p))
}

func toResponse(p Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		FullName:        p.FullName,
		JobTitle:        p.JobTitle,
		Skills:          skills,
		WorkExperience:  p.WorkExperience,
		Education:       p.Education,
		ContactEmail:    p.ContactEmail,
		ContactPhone:    p.ContactPhone,
		ContactLocation: p.ContactLocation,
		UpdatedAt:       p.UpdatedAt,
	}
}
