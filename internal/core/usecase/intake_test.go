package usecase

import (
	"context"
	"strings"
	"testing"

	"isogen/internal/core/docgen"
	"isogen/internal/core/domain"
)

func newIntakeFixture(t *testing.T) (*repoFake, *IntakeUseCase, *domain.Document) {
	t.Helper()
	repo := newRepoFake()
	doc, err := NewDocumentUseCase(repo).Create(context.Background(), "user-1", "Handboek", "9001", "Acme BV")
	if err != nil {
		t.Fatalf("fixture create: %v", err)
	}
	return repo, NewIntakeUseCase(repo), doc
}

func TestIntakeCurrentQuestionStart(t *testing.T) {
	_, uc, doc := newIntakeFixture(t)

	state, err := uc.CurrentQuestion(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("CurrentQuestion() error = %v", err)
	}
	if state.Index != 0 || state.Completed {
		t.Fatalf("expected fresh flow, got %+v", state)
	}
	if state.Question != "Wat is de volledige naam van uw bedrijf?" {
		t.Fatalf("unexpected first question %q", state.Question)
	}
	if state.Total != docgen.QuestionCount() {
		t.Fatalf("expected total %d, got %d", docgen.QuestionCount(), state.Total)
	}
}

func TestIntakeSubmitAnswerSubstitutes(t *testing.T) {
	_, uc, doc := newIntakeFixture(t)

	result, err := uc.SubmitAnswer(context.Background(), "user-1", doc.ID, "Acme BV")
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if strings.Contains(result.Document.EditableContent, "[BEDRIJFSNAAM]") {
		t.Fatalf("expected company name substituted")
	}
	if !strings.Contains(result.Document.EditableContent, "Acme BV") {
		t.Fatalf("expected answer in buffer")
	}
	if result.Document.CurrentQuestionIndex != 1 {
		t.Fatalf("expected index advanced to 1, got %d", result.Document.CurrentQuestionIndex)
	}
	if !strings.HasPrefix(result.Message, "Perfect!") {
		t.Fatalf("unexpected confirmation %q", result.Message)
	}
	if result.Document.Progress != docgen.Progress(1) {
		t.Fatalf("expected derived progress, got %d", result.Document.Progress)
	}
}

func TestIntakeFullFlowCompletes(t *testing.T) {
	_, uc, doc := newIntakeFixture(t)

	var last *domain.Document
	for i := 0; i < docgen.QuestionCount(); i++ {
		result, err := uc.SubmitAnswer(context.Background(), "user-1", doc.ID, "antwoord")
		if err != nil {
			t.Fatalf("SubmitAnswer(%d) error = %v", i, err)
		}
		last = result.Document
		if i == docgen.QuestionCount()-1 && !strings.HasPrefix(result.Message, "Uitstekend!") {
			t.Fatalf("expected completion message, got %q", result.Message)
		}
	}

	if last.Status != domain.StatusComplete {
		t.Fatalf("expected status Voltooid, got %s", last.Status)
	}
	if last.Progress != 100 {
		t.Fatalf("expected 100%% progress, got %d", last.Progress)
	}
	if got := strings.Count(last.EditableContent, "Verplichte Documenten en Vastgelegde Informatie ISO 9001:2015"); got != 1 {
		t.Fatalf("expected one appendix, got %d", got)
	}

	if _, err := uc.SubmitAnswer(context.Background(), "user-1", doc.ID, "nog een"); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input after completion, got %v", err)
	}
}

func TestIntakeSubmitAnswerValidation(t *testing.T) {
	_, uc, doc := newIntakeFixture(t)

	if _, err := uc.SubmitAnswer(context.Background(), "user-1", doc.ID, "   "); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank answer, got %v", err)
	}
	if _, err := uc.SubmitAnswer(context.Background(), "user-2", doc.ID, "x"); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}
}
