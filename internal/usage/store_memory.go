package usage

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]Usage
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]Usage)}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[userID], nil
}

func (s *memoryStore) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	guest, ok := s.data[guestUserID]
	if !ok || guest.GenerationCount == 0 {
		delete(s.data, guestUserID)
		return 0, nil
	}

	authed := s.data[authedUserID]
	authed.GenerationCount += guest.GenerationCount
	if guest.LastGeneration != nil &&
		(authed.LastGeneration == nil || guest.LastGeneration.Timestamp.After(authed.LastGeneration.Timestamp)) {
		authed.LastGeneration = guest.LastGeneration
	}
	authed.UpdatedAt = time.Now().UTC()
	s.data[authedUserID] = authed
	delete(s.data, guestUserID)
	return guest.GenerationCount, nil
}

func (s *memoryStore) Record(ctx context.Context, userID string, last LastGeneration) (Usage, error) {
	if err := ctx.Err(); err != nil {
		return Usage{}, err
	}
	now := time.Now().UTC()
	last.Timestamp = now

	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.data[userID]
	u.GenerationCount++
	u.LastGeneration = &last
	u.UpdatedAt = now
	s.data[userID] = u
	return u, nil
}
