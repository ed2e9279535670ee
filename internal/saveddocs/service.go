package saveddocs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"careerdraft-backend/internal/document"
)

const maxTitleLen = 80

// Service contains business logic for saved documents.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save stores a generated document for a user. An empty title is derived
// from the first line of the content.
func (s *Service) Save(ctx context.Context, userID string, kind document.Kind, title, content string) (SavedDocument, error) {
	if userID == "" || strings.TrimSpace(content) == "" {
		return SavedDocument{}, ErrInvalidInput
	}
	if kind != document.KindResume && kind != document.KindCoverLetter {
		return SavedDocument{}, ErrInvalidInput
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = deriveTitle(content)
	}
	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen])
	}

	doc := SavedDocument{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return SavedDocument{}, err
	}
	return doc, nil
}

// Get returns a saved document by ID for a user.
func (s *Service) Get(ctx context.Context, userID, docID string) (SavedDocument, error) {
	if userID == "" || docID == "" {
		return SavedDocument{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, docID)
}

// List returns saved documents for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]SavedDocument, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a saved document owned by the user.
func (s *Service) Delete(ctx context.Context, userID, docID string) error {
	if userID == "" || docID == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, docID)
}

func deriveTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return "Untitled"
}
