package saveddocs

import "context"

// Repo defines persistence operations for saved documents.
type Repo interface {
	Create(ctx context.Context, doc SavedDocument) error
	GetByID(ctx context.Context, userID, docID string) (SavedDocument, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]SavedDocument, error)
	Delete(ctx context.Context, userID, docID string) error
}
