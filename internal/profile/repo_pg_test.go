package profile

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertJoinsSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	p := Profile{
		UserID:         "user-1",
		FullName:       "Jane Doe",
		JobTitle:       "Engineer",
		Skills:         []string{"Go", "Postgres"},
		WorkExperience: "8 years",
		UpdatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(
			p.UserID,
			p.FullName,
			p.JobTitle,
			"Go,Postgres",
			p.WorkExperience,
			"", "", "", "",
			p.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Upsert(context.Background(), p); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserSplitsSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{
		"user_id", "full_name", "job_title", "skills", "work_experience",
		"education", "contact_email", "contact_phone", "contact_location", "updated_at",
	}).AddRow("user-1", "Jane Doe", "Engineer", "Go, Postgres,", "8 years", "", "", "", "", time.Now().UTC())

	mock.ExpectQuery("SELECT user_id, full_name").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	p, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "Go" || p.Skills[1] != "Postgres" {
		t.Fatalf("Skills = %v", p.Skills)
	}
}
