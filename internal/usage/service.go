package usage

import (
	"context"

	"careerdraft-backend/internal/document"
)

type store interface {
	Get(ctx context.Context, userID string) (Usage, error)
	Record(ctx context.Context, userID string, last LastGeneration) (Usage, error)
}

// Service manages generation counters via an underlying store. The counter is
// informational: it is never consulted to gate a generation.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store.
func NewService() *Service {
	return &Service{store: newMemoryStore()}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// Get returns the current usage snapshot for a user. Users with no recorded
// generations get a zero snapshot.
func (s *Service) Get(ctx context.Context, userID string) (Usage, error) {
	return s.store.Get(ctx, userID)
}

type guestClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}

// ClaimGuest folds a guest's counters into the authenticated user's row and
// returns how many generations moved.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if claimer, ok := s.store.(guestClaimer); ok {
		return claimer.ClaimGuest(ctx, guestUserID, authedUserID)
	}
	return 0, nil
}

// Record increments the user's generation counter and overwrites the
// last-generation metadata. Writes are last-write-wins per user; concurrent
// generations for the same user may interleave freely.
func (s *Service) Record(ctx context.Context, userID string, kind document.Kind, contentLength int) (Usage, error) {
	return s.store.Record(ctx, userID, LastGeneration{
		Kind:          kind,
		ContentLength: contentLength,
	})
}
