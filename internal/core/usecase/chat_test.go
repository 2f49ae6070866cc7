package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"isogen/internal/core/domain"
)

func TestChatSendPublishesReplyRequest(t *testing.T) {
	repo := newRepoFake()
	doc, _ := NewDocumentUseCase(repo).Create(context.Background(), "user-1", "Handboek", "9001", "Acme")
	store := &chatStoreFake{}
	queue := &queueFake{}
	uc := NewChatUseCase(repo, store, queue)

	msg, err := uc.Send(context.Background(), "user-1", doc.ID, "Wat is een interne audit?")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if msg.Role != domain.RoleUser {
		t.Fatalf("expected user role, got %s", msg.Role)
	}
	if len(store.messages) != 1 {
		t.Fatalf("expected one stored message, got %d", len(store.messages))
	}
	if len(queue.published) != 1 || queue.published[0].MessageID != msg.ID {
		t.Fatalf("expected queued reply request for message %s", msg.ID)
	}
}

func TestChatSendQueueError(t *testing.T) {
	repo := newRepoFake()
	doc, _ := NewDocumentUseCase(repo).Create(context.Background(), "user-1", "Handboek", "9001", "Acme")
	uc := NewChatUseCase(repo, &chatStoreFake{}, &queueFake{err: errors.New("nats down")})

	_, err := uc.Send(context.Background(), "user-1", doc.ID, "vraag")
	if err == nil || !strings.Contains(err.Error(), "publish reply request") {
		t.Fatalf("expected publish error, got %v", err)
	}
}

func TestChatSendValidation(t *testing.T) {
	repo := newRepoFake()
	doc, _ := NewDocumentUseCase(repo).Create(context.Background(), "user-1", "Handboek", "9001", "Acme")
	uc := NewChatUseCase(repo, &chatStoreFake{}, &queueFake{})

	if _, err := uc.Send(context.Background(), "user-1", doc.ID, " "); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.Send(context.Background(), "user-2", doc.ID, "vraag"); !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found for foreign user, got %v", err)
	}
}

func TestChatHistoryScopedToDocument(t *testing.T) {
	repo := newRepoFake()
	docSvc := NewDocumentUseCase(repo)
	first, _ := docSvc.Create(context.Background(), "user-1", "Handboek", "9001", "Acme")
	second, _ := docSvc.Create(context.Background(), "user-1", "Beleid", "27001", "Acme")
	store := &chatStoreFake{}
	uc := NewChatUseCase(repo, store, &queueFake{})

	if _, err := uc.Send(context.Background(), "user-1", first.ID, "eerste"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if _, err := uc.Send(context.Background(), "user-1", second.ID, "tweede"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	history, err := uc.History(context.Background(), "user-1", first.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 || history[0].Content != "eerste" {
		t.Fatalf("expected scoped history, got %+v", history)
	}
}
