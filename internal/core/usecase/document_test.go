package usecase

import (
	"context"
	"strings"
	"testing"

	"isogen/internal/core/domain"
)

func TestDocumentCreate(t *testing.T) {
	repo := newRepoFake()
	uc := NewDocumentUseCase(repo)

	doc, err := uc.Create(context.Background(), "user-1", "Kwaliteitshandboek", "9001", "Acme BV")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("expected document id")
	}
	if doc.Status != domain.StatusConcept {
		t.Fatalf("expected status Concept, got %s", doc.Status)
	}
	if doc.Type != "ISO 9001" || doc.Color != "blue" {
		t.Fatalf("expected 9001 profile, got %s/%s", doc.Type, doc.Color)
	}
	if !strings.Contains(doc.EditableContent, "[BEDRIJFSNAAM]") {
		t.Fatalf("expected pristine template buffer")
	}
	if doc.Progress != 0 || doc.CurrentQuestionIndex != 0 {
		t.Fatalf("expected zeroed intake state")
	}
	if repo.docs[doc.ID] == nil {
		t.Fatalf("expected repo.Create call")
	}
}

func TestDocumentCreateValidation(t *testing.T) {
	uc := NewDocumentUseCase(newRepoFake())

	if _, err := uc.Create(context.Background(), "user-1", "  ", "9001", "Acme"); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty title, got %v", err)
	}
	if _, err := uc.Create(context.Background(), "", "Handboek", "9001", "Acme"); !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for missing user, got %v", err)
	}
}

func TestDocumentCreateUnknownTypeFallsBack(t *testing.T) {
	uc := NewDocumentUseCase(newRepoFake())

	doc, err := uc.Create(context.Background(), "user-1", "Handboek", "12345", "Acme")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if doc.Type != "ISO 9001" {
		t.Fatalf("expected fallback to ISO 9001, got %s", doc.Type)
	}
}

func TestDocumentSaveContent(t *testing.T) {
	repo := newRepoFake()
	uc := NewDocumentUseCase(repo)

	doc, err := uc.Create(context.Background(), "user-1", "Handboek", "9001", "Acme")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	saved, err := uc.SaveContent(context.Background(), "user-1", doc.ID, "<h1>Eigen inhoud</h1>")
	if err != nil {
		t.Fatalf("SaveContent() error = %v", err)
	}
	if saved.EditableContent != "<h1>Eigen inhoud</h1>" {
		t.Fatalf("expected stored content, got %q", saved.EditableContent)
	}

	if _, err := uc.SaveContent(context.Background(), "user-2", doc.ID, "x"); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}
}

func TestDocumentDelete(t *testing.T) {
	repo := newRepoFake()
	uc := NewDocumentUseCase(repo)

	doc, _ := uc.Create(context.Background(), "user-1", "Handboek", "9001", "Acme")
	if err := uc.Delete(context.Background(), "user-1", doc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := uc.Delete(context.Background(), "user-1", doc.ID); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
