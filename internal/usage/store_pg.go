package usage

import (
	"context"
	"database/sql"
	"time"

	"careerdraft-backend/internal/document"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed usage store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Usage, error) {
	var (
		u        Usage
		lastKind sql.NullString
		lastAt   sql.NullTime
		lastLen  sql.NullInt64
	)
	err := s.DB.QueryRowContext(ctx, `
SELECT generation_count, last_kind, last_generated_at, last_content_length, updated_at
FROM generation_usage WHERE user_id = $1`, userID).
		Scan(&u.GenerationCount, &lastKind, &lastAt, &lastLen, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return Usage{}, nil
	}
	if err != nil {
		return Usage{}, err
	}
	if lastKind.Valid {
		u.LastGeneration = &LastGeneration{
			Kind:          document.Kind(lastKind.String),
			Timestamp:     lastAt.Time.UTC(),
			ContentLength: int(lastLen.Int64),
		}
	}
	return u, nil
}

func (s *pgStore) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var (
		count    int
		lastKind sql.NullString
		lastAt   sql.NullTime
		lastLen  sql.NullInt64
	)
	err = tx.QueryRowContext(ctx, `
SELECT generation_count, last_kind, last_generated_at, last_content_length
FROM generation_usage WHERE user_id = $1`, guestUserID).
		Scan(&count, &lastKind, &lastAt, &lastLen)
	if err == sql.ErrNoRows {
		err = tx.Commit()
		return 0, err
	}
	if err != nil {
		return 0, err
	}

	if _, err = tx.ExecContext(ctx, `
INSERT INTO generation_usage (user_id, generation_count, last_kind, last_generated_at, last_content_length, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id) DO UPDATE SET
  generation_count = generation_usage.generation_count + EXCLUDED.generation_count,
  last_kind = CASE
    WHEN EXCLUDED.last_generated_at IS NOT NULL
     AND (generation_usage.last_generated_at IS NULL OR EXCLUDED.last_generated_at > generation_usage.last_generated_at)
    THEN EXCLUDED.last_kind ELSE generation_usage.last_kind END,
  last_content_length = CASE
    WHEN EXCLUDED.last_generated_at IS NOT NULL
     AND (generation_usage.last_generated_at IS NULL OR EXCLUDED.last_generated_at > generation_usage.last_generated_at)
    THEN EXCLUDED.last_content_length ELSE generation_usage.last_content_length END,
  last_generated_at = GREATEST(
    COALESCE(generation_usage.last_generated_at, 'epoch'::timestamptz),
    COALESCE(EXCLUDED.last_generated_at, 'epoch'::timestamptz)),
  updated_at = now()`,
		authedUserID, count, lastKind, lastAt, lastLen); err != nil {
		return 0, err
	}

	if _, err = tx.ExecContext(ctx, `
DELETE FROM generation_usage WHERE user_id = $1`, guestUserID); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *pgStore) Record(ctx context.Context, userID string, last LastGeneration) (Usage, error) {
	now := time.Now().UTC()
	last.Timestamp = now

	var u Usage
	err := s.DB.QueryRowContext(ctx, `
INSERT INTO generation_usage (user_id, generation_count, last_kind, last_generated_at, last_content_length, updated_at)
VALUES ($1, 1, $2, $3, $4, $3)
ON CONFLICT (user_id) DO UPDATE SET
  generation_count = generation_usage.generation_count + 1,
  last_kind = EXCLUDED.last_kind,
  last_generated_at = EXCLUDED.last_generated_at,
  last_content_length = EXCLUDED.last_content_length,
  updated_at = EXCLUDED.updated_at
RETURNING generation_count, updated_at`,
		userID, string(last.Kind), now, last.ContentLength).
		Scan(&u.GenerationCount, &u.UpdatedAt)
	if err != nil {
		return Usage{}, err
	}
	u.LastGeneration = &last
	return u, nil
}
