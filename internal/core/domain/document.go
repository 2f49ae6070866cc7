package domain

import "time"

type DocumentStatus string

const (
	StatusConcept  DocumentStatus = "Concept"
	StatusComplete DocumentStatus = "Voltooid"
)

// Document is a compliance handbook under construction. The generated
// buffer lives in EditableContent; Answers holds the sparse intake
// answers keyed by question index.
type Document struct {
	ID                   string         `json:"id"`
	UserID               string         `json:"user_id"`
	Title                string         `json:"title"`
	Type                 string         `json:"type"`
	Company              string         `json:"company"`
	Status               DocumentStatus `json:"status"`
	Icon                 string         `json:"icon"`
	Color                string         `json:"color"`
	CurrentQuestionIndex int            `json:"current_question_index"`
	Answers              map[int]string `json:"answers"`
	EditableContent      string         `json:"editable_content"`
	Progress             int            `json:"progress"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// Completed reports whether the intake flow has run past the last question.
func (d Document) Completed(totalQuestions int) bool {
	return d.CurrentQuestionIndex >= totalQuestions
}

// AnswerSnapshot returns a defensive copy of the answer map.
func (d Document) AnswerSnapshot() map[int]string {
	out := make(map[int]string, len(d.Answers))
	for k, v := range d.Answers {
		out[k] = v
	}
	return out
}
