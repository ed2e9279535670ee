package saveddocs

import (
	"time"

	"careerdraft-backend/internal/document"
)

// SavedDocument is a generated document a user chose to keep.
type SavedDocument struct {
	ID        string
	UserID    string
	Kind      document.Kind
	Title     string
	Content   string
	CreatedAt time.Time
}
