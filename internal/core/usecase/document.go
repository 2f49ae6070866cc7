package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"isogen/internal/core/docgen"
	"isogen/internal/core/domain"
	"isogen/internal/core/ports"
)

type DocumentUseCase struct {
	repo ports.DocumentRepository
}

func NewDocumentUseCase(repo ports.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

func (uc *DocumentUseCase) Create(ctx context.Context, userID, title, isoType, company string) (*domain.Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "document.Create", fmt.Errorf("title is required"))
	}
	if strings.TrimSpace(userID) == "" {
		return nil, domain.WrapError(domain.ErrUnauthorized, "document.Create", fmt.Errorf("missing user id"))
	}

	profile := docgen.ProfileFor(isoType)
	now := time.Now().UTC()

	doc := &domain.Document{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Title:                title,
		Type:                 profile.Name,
		Company:              strings.TrimSpace(company),
		Status:               domain.StatusConcept,
		Icon:                 profile.Icon,
		Color:                profile.Color,
		CurrentQuestionIndex: 0,
		Answers:              map[int]string{},
		EditableContent:      docgen.QuestionnaireTemplate(now),
		Progress:             0,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return doc, nil
}

func (uc *DocumentUseCase) Get(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (uc *DocumentUseCase) List(ctx context.Context, userID string) ([]domain.Document, error) {
	docs, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// SaveContent stores a manual editor save. Intake state is untouched: the
// next answer submission regenerates the buffer from the answer map.
func (uc *DocumentUseCase) SaveContent(ctx context.Context, userID, documentID, content string) (*domain.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "document.SaveContent", fmt.Errorf("content is required"))
	}

	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	doc.EditableContent = content
	doc.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("save content: %w", err)
	}
	return doc, nil
}

func (uc *DocumentUseCase) Delete(ctx context.Context, userID, documentID string) error {
	if err := uc.repo.Delete(ctx, userID, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
