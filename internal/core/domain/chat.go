package domain

import "time"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Role       ChatRole  `json:"role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatReplyRequest travels over the queue from the API to the worker.
type ChatReplyRequest struct {
	DocumentID  string    `json:"document_id"`
	UserID      string    `json:"user_id"`
	MessageID   string    `json:"message_id"`
	Message     string    `json:"message"`
	RequestedAt time.Time `json:"requested_at"`
}
