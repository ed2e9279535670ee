package saveddocs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"careerdraft-backend/internal/document"
)

func TestPGRepoCreateInsertsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	doc := SavedDocument{
		ID:        "doc-1",
		UserID:    "user-1",
		Kind:      document.KindResume,
		Title:     "JANE DOE",
		Content:   "JANE DOE\nEXPERIENCE\n- Built things",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO saved_documents").
		WithArgs(doc.ID, doc.UserID, "resume", doc.Title, doc.Content, doc.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDHidesOtherUsersDocuments(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{"id", "user_id", "kind", "title", "content", "created_at"}).
		AddRow("doc-1", "owner", "cover-letter", "Letter", "Dear Hiring Manager,", time.Now().UTC())
	mock.ExpectQuery("SELECT id, user_id, kind").
		WithArgs("doc-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "intruder", "doc-1")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestPGRepoDeleteMissingIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("DELETE FROM saved_documents").
		WithArgs("doc-x", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Delete(context.Background(), "user-1", "doc-x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
