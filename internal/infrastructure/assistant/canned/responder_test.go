package canned

import (
	"context"
	"strings"
	"testing"
)

func TestReplyRoutesTopicQuestions(t *testing.T) {
	r := New()

	reply, err := r.Reply(context.Background(), "doc-1", "Welke documenten zijn verplicht voor ISO 9001?")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.Contains(reply, "ISO 9001") {
		t.Fatalf("expected topic answer, got %q", reply)
	}
	if !strings.HasSuffix(reply, "Of wilt u dat ik tekst in uw document herschrijf?") {
		t.Fatalf("expected follow-up suffix, got %q", reply)
	}
}

func TestReplyFallsBackToGeneralAnswer(t *testing.T) {
	r := New()

	reply, err := r.Reply(context.Background(), "doc-1", "hallo daar")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	for _, candidate := range topicResponses {
		if strings.Contains(reply, candidate) {
			t.Fatalf("general message must not get a topic answer")
		}
	}
}

func TestReplyIsDeterministic(t *testing.T) {
	r := New()

	first, err := r.Reply(context.Background(), "doc-1", "Wat is een audit?")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	second, err := r.Reply(context.Background(), "doc-1", "Wat is een audit?")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if first != second {
		t.Fatalf("same input must yield the same reply")
	}
}

func TestReplyHonorsCancelledContext(t *testing.T) {
	r := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Reply(ctx, "doc-1", "iso"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestReplyRoutesRewriteRequests(t *testing.T) {
	r := New()

	reply, err := r.Reply(context.Background(), "doc-1", "Herschrijf deze alinea alstublieft")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if !strings.HasPrefix(reply, "Hier is een verbeterde, meer professionele versie") {
		t.Fatalf("expected rewrite wrapper, got %q", reply)
	}
}

type improverStub struct{}

func (improverStub) Improve(_ context.Context, _ string) (string, error) {
	return "extern herschreven", nil
}

func TestReplyUsesPluggedImprover(t *testing.T) {
	r := NewWithImprover(improverStub{})

	reply, err := r.Reply(context.Background(), "doc-1", "graag verbeteren")
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if reply != "extern herschreven" {
		t.Fatalf("expected plugged improver output, got %q", reply)
	}
}

func TestImproveWrapsRewrite(t *testing.T) {
	r := New()

	improved, err := r.Improve(context.Background(), "Wij doen kwaliteit.")
	if err != nil {
		t.Fatalf("Improve() error = %v", err)
	}
	if !strings.HasPrefix(improved, "Hier is een verbeterde, meer professionele versie") {
		t.Fatalf("unexpected prefix in %q", improved)
	}
	if !strings.Contains(improved, "Wilt u dat ik deze tekst in uw document vervang") {
		t.Fatalf("expected replacement prompt in %q", improved)
	}
}
