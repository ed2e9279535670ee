package saveddocs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"careerdraft-backend/internal/document"
)

func TestServiceSaveDerivesTitleFromFirstLine(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	doc, err := svc.Save(context.Background(), "user-1", document.KindResume, "", "\n\nJANE DOE\nEXPERIENCE")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if doc.Title != "JANE DOE" {
		t.Fatalf("Title = %q, want JANE DOE", doc.Title)
	}
	if doc.ID == "" {
		t.Fatal("expected generated ID")
	}
}

func TestServiceSaveTruncatesLongTitles(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	long := strings.Repeat("x", 200)
	doc, err := svc.Save(context.Background(), "user-1", document.KindCoverLetter, long, "Dear Hiring Manager,")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(doc.Title) != maxTitleLen {
		t.Fatalf("len(Title) = %d, want %d", len(doc.Title), maxTitleLen)
	}
}

func TestServiceSaveTruncatesTitlesOnRuneBoundaries(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	long := strings.Repeat("é", 200)
	doc, err := svc.Save(context.Background(), "user-1", document.KindResume, long, "content")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !utf8.ValidString(doc.Title) {
		t.Fatalf("Title is not valid UTF-8: %q", doc.Title)
	}
	if got := utf8.RuneCountInString(doc.Title); got != maxTitleLen {
		t.Fatalf("rune count = %d, want %d", got, maxTitleLen)
	}
}

func TestServiceSaveRejectsBlankContent(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Save(context.Background(), "user-1", document.KindResume, "Title", "   \n  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestServiceListIsScopedToUser(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Save(ctx, "user-1", document.KindResume, "", "mine"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := svc.Save(ctx, "user-2", document.KindResume, "", "theirs"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	docs, err := svc.List(ctx, "user-1", 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 || docs[0].Content != "mine" {
		t.Fatalf("unexpected list: %+v", docs)
	}
}

func TestServiceDeleteThenGetIsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	doc, err := svc.Save(ctx, "user-1", document.KindResume, "", "content")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Delete(ctx, "user-1", doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, "user-1", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
