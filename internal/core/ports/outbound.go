package ports

import (
	"context"

	"isogen/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, userID, id string) (*domain.Document, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, userID, id string) error
}

// ChatStore persists conversation history per document.
type ChatStore interface {
	AppendMessage(ctx context.Context, message domain.ChatMessage) error
	ListMessages(ctx context.Context, documentID string) ([]domain.ChatMessage, error)
}

// MessageQueue carries chat reply requests from the API to the worker.
type MessageQueue interface {
	PublishChatReplyRequested(ctx context.Context, req domain.ChatReplyRequest) error
	SubscribeChatReplyRequested(ctx context.Context, handler func(context.Context, domain.ChatReplyRequest) error) error
}

// ChatResponder selects the assistant reply for a chat message.
type ChatResponder interface {
	Reply(ctx context.Context, documentID, message string) (string, error)
}

// TextImprover rewrites a text fragment. The canned responder satisfies it
// locally; a remote generator can be plugged in behind the same contract.
type TextImprover interface {
	Improve(ctx context.Context, text string) (string, error)
}

// IdentityVerifier resolves a bearer token to a user id.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// DocumentExporter wraps a document buffer for download.
type DocumentExporter interface {
	Print(title, content string) []byte
	Word(title, content string) []byte
}

// OverviewExporter renders the dashboard workbook for a set of documents.
type OverviewExporter interface {
	Overview(docs []domain.Document) ([]byte, error)
}
