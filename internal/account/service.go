package account

import (
	"context"
	"errors"
	"strings"

	"careerdraft-backend/internal/saveddocs"
	"careerdraft-backend/internal/usage"
)

// Service migrates guest-owned data to an authenticated account.
type Service struct {
	DocsRepo saveddocs.Repo
	Usage    *usage.Service
}

// ClaimResult summarizes a guest claim.
type ClaimResult struct {
	MigratedDocuments   int `json:"migratedDocuments"`
	MigratedGenerations int `json:"migratedGenerations"`
}

// NewService constructs a Service.
func NewService(docsRepo saveddocs.Repo, usageSvc *usage.Service) *Service {
	return &Service{DocsRepo: docsRepo, Usage: usageSvc}
}

type guestDocClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}

// ClaimGuest reassigns the guest's saved documents and folds the guest's
// generation counters into the authenticated user.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	claimer, ok := s.DocsRepo.(guestDocClaimer)
	if !ok {
		return ClaimResult{}, errors.New("documents repo does not support claim")
	}
	docCount, err := claimer.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}

	genCount := 0
	if s.Usage != nil {
		genCount, err = s.Usage.ClaimGuest(ctx, guestUserID, authedUserID)
		if err != nil {
			return ClaimResult{}, err
		}
	}

	return ClaimResult{MigratedDocuments: docCount, MigratedGenerations: genCount}, nil
}
