package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"isogen/internal/core/domain"
	"isogen/internal/core/ports"
)

type ReplyUseCase struct {
	store       ports.ChatStore
	responder   ports.ChatResponder
	typingDelay time.Duration
}

func NewReplyUseCase(store ports.ChatStore, responder ports.ChatResponder, typingDelay time.Duration) *ReplyUseCase {
	return &ReplyUseCase{
		store:       store,
		responder:   responder,
		typingDelay: typingDelay,
	}
}

// ProcessReply produces the assistant reply for a queued chat request. The
// typing delay is cancellable: a shutdown mid-delay drops the reply instead
// of writing after the subscription closed.
func (uc *ReplyUseCase) ProcessReply(ctx context.Context, req domain.ChatReplyRequest) error {
	if uc.typingDelay > 0 {
		timer := time.NewTimer(uc.typingDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	reply, err := uc.responder.Reply(ctx, req.DocumentID, req.Message)
	if err != nil {
		return fmt.Errorf("generate reply: %w", err)
	}

	msg := domain.ChatMessage{
		ID:         uuid.NewString(),
		DocumentID: req.DocumentID,
		Role:       domain.RoleAssistant,
		Content:    reply,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.store.AppendMessage(ctx, msg); err != nil {
		return fmt.Errorf("store reply: %w", err)
	}
	return nil
}
