package profile

import "context"

// Repo defines persistence operations for applicant profiles.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
}
