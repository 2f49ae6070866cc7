package usecase

import (
	"context"
	"strings"
	"testing"

	"isogen/internal/core/domain"
)

func newExportFixture(t *testing.T) (*repoFake, *ExportUseCase, *domain.Document) {
	t.Helper()
	repo := newRepoFake()
	doc, err := NewDocumentUseCase(repo).Create(context.Background(), "user-1", "Handboek", "9001", "Acme")
	if err != nil {
		t.Fatalf("fixture create: %v", err)
	}
	return repo, NewExportUseCase(repo, exporterFake{}, overviewFake{}), doc
}

func TestExportFormats(t *testing.T) {
	_, uc, doc := newExportFixture(t)

	printed, err := uc.Export(context.Background(), "user-1", doc.ID, FormatPrint, false)
	if err != nil {
		t.Fatalf("Export(print) error = %v", err)
	}
	if printed.ContentType != "text/html; charset=utf-8" {
		t.Fatalf("unexpected print content type %q", printed.ContentType)
	}

	word, err := uc.Export(context.Background(), "user-1", doc.ID, FormatWord, false)
	if err != nil {
		t.Fatalf("Export(word) error = %v", err)
	}
	if word.ContentType != "application/msword" {
		t.Fatalf("unexpected word content type %q", word.ContentType)
	}
	if !strings.HasPrefix(word.Filename, "ISO-9001-Kwaliteitshandboek-") || !strings.HasSuffix(word.Filename, ".doc") {
		t.Fatalf("unexpected word filename %q", word.Filename)
	}

	if _, err := uc.Export(context.Background(), "user-1", doc.ID, "pdf", false); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown format, got %v", err)
	}
}

func TestExportStrictRejectsUnresolvedTokens(t *testing.T) {
	_, uc, doc := newExportFixture(t)

	_, err := uc.Export(context.Background(), "user-1", doc.ID, FormatPrint, true)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected strict export failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "[BEDRIJFSNAAM]") {
		t.Fatalf("expected unresolved token named, got %v", err)
	}
}

func TestExportStrictPassesWithoutTokens(t *testing.T) {
	repo, uc, doc := newExportFixture(t)

	stored := repo.docs[doc.ID]
	stored.EditableContent = "<h1>Klaar</h1><p>Alles ingevuld.</p>"

	if _, err := uc.Export(context.Background(), "user-1", doc.ID, FormatPrint, true); err != nil {
		t.Fatalf("expected strict export to pass, got %v", err)
	}
}

func TestExportOverview(t *testing.T) {
	_, uc, _ := newExportFixture(t)

	result, err := uc.Overview(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if !strings.HasSuffix(result.Filename, ".xlsx") {
		t.Fatalf("unexpected overview filename %q", result.Filename)
	}
	if len(result.Data) == 0 {
		t.Fatalf("expected workbook bytes")
	}
}

func TestExportAnalysis(t *testing.T) {
	_, uc, doc := newExportFixture(t)

	analysis, err := uc.Analysis(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Analysis() error = %v", err)
	}
	if analysis.WordCount == 0 {
		t.Fatalf("expected words in template buffer")
	}
	if len(analysis.Chapters) == 0 {
		t.Fatalf("expected chapter states")
	}
}
