// Package mail delivers generated documents over SMTP.
package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"careerdraft-backend/internal/shared/telemetry"
)

// ErrInvalidMessage indicates a message failed validation before sending.
var ErrInvalidMessage = errors.New("invalid message")

// Config holds SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Attachment is a file to attach to an outgoing message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message is an outgoing email.
type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Service sends email through an SMTP relay.
type Service struct {
	cfg  Config
	send func(*gomail.Message) error
}

// NewService constructs a Service dialing the configured SMTP host.
func NewService(cfg Config) *Service {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Service{cfg: cfg, send: func(m *gomail.Message) error { return dialer.DialAndSend(m) }}
}

// Send delivers the message. It returns the generated Message-ID on success.
func (s *Service) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" || msg.Subject == "" || msg.Text == "" {
		return "", fmt.Errorf("%w: to, subject and text are required", ErrInvalidMessage)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), fromDomain(s.cfg.From))

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, "CareerDraft")
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	for _, att := range msg.Attachments {
		att := att
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(att.Content))
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		m.Attach(att.Filename, settings...)
	}

	if err := s.send(m); err != nil {
		return "", err
	}
	telemetry.Info("mail.sent", map[string]any{
		"to":          msg.To,
		"message_id":  messageID,
		"attachments": len(msg.Attachments),
	})
	return messageID, nil
}

// SendWithAttachment sends a single-attachment message, defaulting the body
// when the caller supplies none.
func (s *Service) SendWithAttachment(ctx context.Context, to, subject, body string, attachment []byte, filename string) (string, string, error) {
	if body == "" {
		body = "Please find your document attached."
	}
	messageID, err := s.Send(ctx, Message{
		To:      to,
		Subject: subject,
		Text:    body,
		Attachments: []Attachment{{
			Filename:    filename,
			Content:     attachment,
			ContentType: "application/pdf",
		}},
	})
	return messageID, "", err
}

func fromDomain(from string) string {
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		return from[i+1:]
	}
	return "careerdraft.com"
}
