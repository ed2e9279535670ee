package profile

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service manages applicant profiles via an underlying repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// GetByUser returns the stored profile for a user.
func (s *Service) GetByUser(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByUser(ctx, userID)
}

// Save merges the update into any existing profile: fields left empty in the
// update keep their stored values. This mirrors the merge-write semantics of
// the document store the frontend originally talked to.
func (s *Service) Save(ctx context.Context, update Profile) (Profile, error) {
	if strings.TrimSpace(update.UserID) == "" {
		return Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	merged := update
	existing, err := s.Repo.GetByUser(ctx, update.UserID)
	if err == nil {
		merged = mergeProfiles(existing, update)
	}

	merged.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Upsert(ctx, merged); err != nil {
		return Profile{}, err
	}
	return merged, nil
}

func mergeProfiles(existing, update Profile) Profile {
	merged := existing
	if strings.TrimSpace(update.FullName) != "" {
		merged.FullName = update.FullName
	}
	if strings.TrimSpace(update.JobTitle) != "" {
		merged.JobTitle = update.JobTitle
	}
	if len(update.Skills) > 0 {
		merged.Skills = update.Skills
	}
	if strings.TrimSpace(update.WorkExperience) != "" {
		merged.WorkExperience = update.WorkExperience
	}
	if strings.TrimSpace(update.Education) != "" {
		merged.Education = update.Education
	}
	if strings.TrimSpace(update.ContactEmail) != "" {
		merged.ContactEmail = update.ContactEmail
	}
	if strings.TrimSpace(update.ContactPhone) != "" {
		merged.ContactPhone = update.ContactPhone
	}
	if strings.TrimSpace(update.ContactLocation) != "" {
		merged.ContactLocation = update.ContactLocation
	}
	return merged
}
