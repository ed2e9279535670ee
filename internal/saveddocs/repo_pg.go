package saveddocs

import (
	"context"
	"database/sql"
	"errors"

	"careerdraft-backend/internal/document"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a saved document.
func (r *PGRepo) Create(ctx context.Context, doc SavedDocument) error {
	const query = `
INSERT INTO saved_documents (id, user_id, kind, title, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		string(doc.Kind),
		doc.Title,
		doc.Content,
		doc.CreatedAt,
	)
	return err
}

// GetByID returns a saved document by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, docID string) (SavedDocument, error) {
	const query = `
SELECT id, user_id, kind, title, content, created_at
FROM saved_documents
WHERE id = $1
LIMIT 1`
	var (
		doc  SavedDocument
		kind string
	)
	err := r.DB.QueryRowContext(ctx, query, docID).Scan(
		&doc.ID,
		&doc.UserID,
		&kind,
		&doc.Title,
		&doc.Content,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SavedDocument{}, ErrNotFound
		}
		return SavedDocument{}, err
	}
	doc.Kind = document.Kind(kind)
	if doc.UserID != userID {
		return SavedDocument{}, ErrForbidden
	}
	return doc, nil
}

// ListByUser lists saved documents ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]SavedDocument, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, kind, title, content, created_at
FROM saved_documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedDocument
	for rows.Next() {
		var (
			doc  SavedDocument
			kind string
		)
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&kind,
			&doc.Title,
			&doc.Content,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		doc.Kind = document.Kind(kind)
		out = append(out, doc)
	}
	return out, rows.Err()
}

// ClaimGuest reassigns a guest's documents to an authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `
UPDATE saved_documents SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

// Delete removes a saved document owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, docID string) error {
	res, err := r.DB.ExecContext(ctx, `
DELETE FROM saved_documents WHERE id = $1 AND user_id = $2`, docID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
