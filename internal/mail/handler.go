package mail

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerdraft-backend/internal/shared/server/respond"
)

// Handler exposes the raw send-email endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches mail routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-email", h.send)
}

type attachmentRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

type sendRequest struct {
	To          string              `json:"to"`
	Subject     string              `json:"subject"`
	Text        string              `json:"text"`
	HTML        string              `json:"html"`
	Attachments []attachmentRequest `json:"attachments"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	msg := Message{To: req.To, Subject: req.Subject, Text: req.Text, HTML: req.HTML}
	for _, att := range req.Attachments {
		content, err := base64.StdEncoding.DecodeString(att.Content)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "attachment content must be base64", nil)
			return
		}
		msg.Attachments = append(msg.Attachments, Attachment{
			Filename:    att.Filename,
			Content:     content,
			ContentType: att.Type,
		})
	}

	messageID, err := h.Svc.Send(c.Request.Context(), msg)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMessage):
			respond.Error(c, http.StatusBadRequest, "validation_error", "to, subject and text are required", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "email_failed", "failed to send email", nil)
		}
		return
	}

	respond.OK(c, gin.H{"success": true, "messageId": messageID})
}
