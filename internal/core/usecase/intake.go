package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"isogen/internal/core/docgen"
	"isogen/internal/core/domain"
	"isogen/internal/core/ports"
)

type IntakeUseCase struct {
	repo ports.DocumentRepository
}

func NewIntakeUseCase(repo ports.DocumentRepository) *IntakeUseCase {
	return &IntakeUseCase{repo: repo}
}

func (uc *IntakeUseCase) CurrentQuestion(ctx context.Context, userID, documentID string) (*ports.QuestionState, error) {
	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	state := &ports.QuestionState{
		Index:     doc.CurrentQuestionIndex,
		Total:     docgen.QuestionCount(),
		Progress:  doc.Progress,
		Completed: doc.Completed(docgen.QuestionCount()),
	}
	if !state.Completed {
		question, err := docgen.Question(doc.CurrentQuestionIndex)
		if err != nil {
			return nil, err
		}
		state.Question = question
	}
	return state, nil
}

// SubmitAnswer records the answer for the current question, regenerates the
// handbook buffer from the full answer map and advances the flow. Progress
// and status are derived from the answers, never trusted from the caller.
func (uc *IntakeUseCase) SubmitAnswer(ctx context.Context, userID, documentID, answer string) (*ports.AnswerResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "intake.SubmitAnswer", fmt.Errorf("answer is required"))
	}

	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if doc.Completed(docgen.QuestionCount()) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "intake.SubmitAnswer", fmt.Errorf("intake already completed"))
	}

	answered := doc.CurrentQuestionIndex
	if doc.Answers == nil {
		doc.Answers = map[int]string{}
	}
	doc.Answers[answered] = answer

	doc.EditableContent = docgen.Render(doc.CreatedAt, doc.Answers)
	doc.CurrentQuestionIndex = answered + 1
	doc.Progress = docgen.Progress(len(doc.Answers))
	if doc.Completed(docgen.QuestionCount()) {
		doc.Status = domain.StatusComplete
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("store answer: %w", err)
	}

	return &ports.AnswerResult{
		Message:  docgen.ConfirmationMessage(answered),
		Document: doc,
	}, nil
}
