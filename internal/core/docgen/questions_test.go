package docgen

import (
	"strings"
	"testing"

	"isogen/internal/core/domain"
)

func TestQuestionBounds(t *testing.T) {
	if _, err := Question(-1); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative index, got %v", err)
	}
	if _, err := Question(QuestionCount()); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input past last question, got %v", err)
	}

	first, err := Question(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "Wat is de volledige naam van uw bedrijf?" {
		t.Fatalf("unexpected first question %q", first)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(0); got != 0 {
		t.Fatalf("expected 0%% before any answer, got %d", got)
	}
	if got := Progress(8); got != 50 {
		t.Fatalf("expected 50%% halfway, got %d", got)
	}
	if got := Progress(QuestionCount()); got != 100 {
		t.Fatalf("expected 100%% when complete, got %d", got)
	}
	if got := Progress(QuestionCount() + 5); got != 100 {
		t.Fatalf("progress must cap at 100, got %d", got)
	}
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(0)
	if !strings.HasPrefix(msg, "Perfect! Ik heb uw antwoord verwerkt in het document.") {
		t.Fatalf("unexpected confirmation prefix: %q", msg)
	}
	if !strings.Contains(msg, questions[1]) {
		t.Fatalf("confirmation should carry the next question")
	}

	final := ConfirmationMessage(QuestionCount() - 1)
	if !strings.HasPrefix(final, "Uitstekend!") {
		t.Fatalf("expected completion message after last answer, got %q", final)
	}
}
