package profile

import (
	"context"
	"errors"
	"testing"
)

func TestSaveMergesIntoExistingProfile(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Save(ctx, Profile{
		UserID:         "user-1",
		FullName:       "Jane Doe",
		JobTitle:       "Engineer",
		Skills:         []string{"Go"},
		WorkExperience: "8 years",
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Empty fields in the update keep their stored values.
	merged, err := svc.Save(ctx, Profile{
		UserID:   "user-1",
		JobTitle: "Staff Engineer",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if merged.FullName != "Jane Doe" {
		t.Fatalf("FullName = %q, want Jane Doe", merged.FullName)
	}
	if merged.JobTitle != "Staff Engineer" {
		t.Fatalf("JobTitle = %q, want Staff Engineer", merged.JobTitle)
	}
	if len(merged.Skills) != 1 || merged.Skills[0] != "Go" {
		t.Fatalf("Skills = %v, want [Go]", merged.Skills)
	}

	stored, err := svc.GetByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if stored.WorkExperience != "8 years" {
		t.Fatalf("WorkExperience = %q", stored.WorkExperience)
	}
}

func TestSaveRequiresUserID(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Save(context.Background(), Profile{FullName: "Anon"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetByUserMissingIsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.GetByUser(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
