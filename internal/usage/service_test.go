package usage

import (
	"context"
	"testing"

	"careerdraft-backend/internal/document"
)

func TestServiceRecordIncrementsAndOverwritesLast(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	u, err := svc.Record(ctx, "user-1", document.KindResume, 900)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if u.GenerationCount != 1 {
		t.Fatalf("GenerationCount = %d, want 1", u.GenerationCount)
	}

	u, err = svc.Record(ctx, "user-1", document.KindCoverLetter, 300)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if u.GenerationCount != 2 {
		t.Fatalf("GenerationCount = %d, want 2", u.GenerationCount)
	}
	if u.LastGeneration == nil || u.LastGeneration.Kind != document.KindCoverLetter {
		t.Fatalf("LastGeneration = %+v, want cover-letter", u.LastGeneration)
	}
	if u.LastGeneration.ContentLength != 300 {
		t.Fatalf("ContentLength = %d, want 300", u.LastGeneration.ContentLength)
	}

	got, err := svc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.GenerationCount != 2 {
		t.Fatalf("Get GenerationCount = %d, want 2", got.GenerationCount)
	}
}

func TestServiceGetUnknownUserIsZero(t *testing.T) {
	svc := NewService()
	u, err := svc.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.GenerationCount != 0 || u.LastGeneration != nil {
		t.Fatalf("expected zero snapshot, got %+v", u)
	}
}
