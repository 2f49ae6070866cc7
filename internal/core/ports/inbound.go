package ports

import (
	"context"

	"isogen/internal/core/domain"
)

// DocumentService is the inbound contract for the document lifecycle.
type DocumentService interface {
	Create(ctx context.Context, userID, title, isoType, company string) (*domain.Document, error)
	Get(ctx context.Context, userID, documentID string) (*domain.Document, error)
	List(ctx context.Context, userID string) ([]domain.Document, error)
	SaveContent(ctx context.Context, userID, documentID, content string) (*domain.Document, error)
	Delete(ctx context.Context, userID, documentID string) error
}

// IntakeService walks a document through the question flow.
type IntakeService interface {
	CurrentQuestion(ctx context.Context, userID, documentID string) (*QuestionState, error)
	SubmitAnswer(ctx context.Context, userID, documentID, answer string) (*AnswerResult, error)
}

// QuestionState describes where the intake flow stands.
type QuestionState struct {
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	Question  string `json:"question,omitempty"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
}

// AnswerResult carries the assistant confirmation plus the updated document.
type AnswerResult struct {
	Message  string           `json:"message"`
	Document *domain.Document `json:"document"`
}

// ChatService records user messages and schedules assistant replies.
type ChatService interface {
	Send(ctx context.Context, userID, documentID, message string) (*domain.ChatMessage, error)
	History(ctx context.Context, userID, documentID string) ([]domain.ChatMessage, error)
}

// ReplyProcessor is the worker-side contract for producing assistant replies.
type ReplyProcessor interface {
	ProcessReply(ctx context.Context, req domain.ChatReplyRequest) error
}

// ExportService renders a document for download.
type ExportService interface {
	Export(ctx context.Context, userID, documentID, format string, strict bool) (*ExportResult, error)
	Overview(ctx context.Context, userID string) (*ExportResult, error)
	Analysis(ctx context.Context, userID, documentID string) (*DocumentAnalysis, error)
}

// ExportResult is a rendered download payload.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentAnalysis mirrors the editor sidebar statistics.
type DocumentAnalysis struct {
	WordCount            int               `json:"word_count"`
	CompletionPercentage int               `json:"completion_percentage"`
	EmptySections        int               `json:"empty_sections"`
	Chapters             map[string]string `json:"chapters"`
}
