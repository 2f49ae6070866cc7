package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"isogen/internal/core/domain"
	"isogen/internal/core/ports"
)

type ChatUseCase struct {
	repo  ports.DocumentRepository
	store ports.ChatStore
	queue ports.MessageQueue
}

func NewChatUseCase(repo ports.DocumentRepository, store ports.ChatStore, queue ports.MessageQueue) *ChatUseCase {
	return &ChatUseCase{repo: repo, store: store, queue: queue}
}

// Send records the user message and schedules the assistant reply on the
// queue. The reply arrives asynchronously through the worker.
func (uc *ChatUseCase) Send(ctx context.Context, userID, documentID, message string) (*domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "chat.Send", fmt.Errorf("message is required"))
	}

	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	msg := domain.ChatMessage{
		ID:         uuid.NewString(),
		DocumentID: doc.ID,
		Role:       domain.RoleUser,
		Content:    message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.store.AppendMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}

	req := domain.ChatReplyRequest{
		DocumentID:  doc.ID,
		UserID:      userID,
		MessageID:   msg.ID,
		Message:     message,
		RequestedAt: msg.CreatedAt,
	}
	if err := uc.queue.PublishChatReplyRequested(ctx, req); err != nil {
		return nil, fmt.Errorf("publish reply request: %w", err)
	}

	return &msg, nil
}

func (uc *ChatUseCase) History(ctx context.Context, userID, documentID string) ([]domain.ChatMessage, error) {
	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	messages, err := uc.store.ListMessages(ctx, doc.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
