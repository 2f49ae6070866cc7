package usecase

import (
	"context"
	"errors"
	"sort"

	"isogen/internal/core/domain"
)

type repoFake struct {
	docs      map[string]*domain.Document
	createErr error
	getErr    error
	updateErr error
}

func newRepoFake() *repoFake {
	return &repoFake{docs: map[string]*domain.Document{}}
}

func (f *repoFake) Create(_ context.Context, doc *domain.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	copyDoc := *doc
	f.docs[doc.ID] = &copyDoc
	return nil
}

func (f *repoFake) GetByID(_ context.Context, userID, id string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	doc, ok := f.docs[id]
	if !ok || doc.UserID != userID {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "fake.GetByID", errors.New("missing"))
	}
	copyDoc := *doc
	return &copyDoc, nil
}

func (f *repoFake) ListByUser(_ context.Context, userID string) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		if doc.UserID == userID {
			out = append(out, *doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *repoFake) Update(_ context.Context, doc *domain.Document) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	copyDoc := *doc
	f.docs[doc.ID] = &copyDoc
	return nil
}

func (f *repoFake) Delete(_ context.Context, userID, id string) error {
	doc, ok := f.docs[id]
	if !ok || doc.UserID != userID {
		return domain.WrapError(domain.ErrDocumentNotFound, "fake.Delete", errors.New("missing"))
	}
	delete(f.docs, id)
	return nil
}

type chatStoreFake struct {
	messages  []domain.ChatMessage
	appendErr error
}

func (f *chatStoreFake) AppendMessage(_ context.Context, msg domain.ChatMessage) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *chatStoreFake) ListMessages(_ context.Context, documentID string) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, msg := range f.messages {
		if msg.DocumentID == documentID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type queueFake struct {
	published []domain.ChatReplyRequest
	err       error
}

func (f *queueFake) PublishChatReplyRequested(_ context.Context, req domain.ChatReplyRequest) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, req)
	return nil
}

func (f *queueFake) SubscribeChatReplyRequested(context.Context, func(context.Context, domain.ChatReplyRequest) error) error {
	return errors.New("not implemented")
}

type responderFake struct {
	reply string
	err   error
}

func (f *responderFake) Reply(context.Context, string, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type exporterFake struct{}

func (exporterFake) Print(title, content string) []byte {
	return []byte("print:" + title + ":" + content)
}

func (exporterFake) Word(title, content string) []byte {
	return []byte("word:" + title + ":" + content)
}

type overviewFake struct {
	err error
}

func (f overviewFake) Overview(docs []domain.Document) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte{'x', byte(len(docs))}, nil
}
