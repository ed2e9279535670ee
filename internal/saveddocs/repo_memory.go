package saveddocs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores saved documents in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]SavedDocument
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]SavedDocument)}
}

// Create stores the document.
func (r *MemoryRepo) Create(ctx context.Context, doc SavedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[doc.ID] = doc
	return nil
}

// GetByID returns a saved document by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, docID string) (SavedDocument, error) {
	if err := ctx.Err(); err != nil {
		return SavedDocument{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byID[docID]
	if !ok {
		return SavedDocument{}, ErrNotFound
	}
	if doc.UserID != userID {
		return SavedDocument{}, ErrForbidden
	}
	return doc, nil
}

// ListByUser returns saved documents for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]SavedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var docs []SavedDocument
	for _, doc := range r.byID {
		if doc.UserID == userID {
			docs = append(docs, doc)
		}
	}
	r.mu.RUnlock()

	if len(docs) == 0 || offset >= len(docs) {
		return []SavedDocument{}, nil
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return docs[offset:end], nil
}

// ClaimGuest reassigns a guest's documents to an authenticated user.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for id, doc := range r.byID {
		if doc.UserID == guestUserID {
			doc.UserID = authedUserID
			r.byID[id] = doc
			count++
		}
	}
	return count, nil
}

// Delete removes a saved document owned by the user.
func (r *MemoryRepo) Delete(ctx context.Context, userID, docID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.byID[docID]
	if !ok {
		return ErrNotFound
	}
	if doc.UserID != userID {
		return ErrForbidden
	}
	delete(r.byID, docID)
	return nil
}
