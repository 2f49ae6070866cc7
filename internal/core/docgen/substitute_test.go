package docgen

import (
	"strings"
	"testing"
	"time"
)

var renderDate = time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

func TestRenderReplacesAllTokenOccurrences(t *testing.T) {
	buf := Render(renderDate, map[int]string{0: "Acme BV"})

	if strings.Contains(buf, "[BEDRIJFSNAAM]") {
		t.Fatalf("expected every company name token replaced")
	}
	if got := strings.Count(buf, "Acme BV"); got < 2 {
		t.Fatalf("expected company name in multiple places, got %d", got)
	}
	if !strings.Contains(buf, "[BEDRIJFSADRES]") {
		t.Fatalf("unanswered tokens must stay literal")
	}
}

func TestRenderEscapesAnswerMarkup(t *testing.T) {
	buf := Render(renderDate, map[int]string{0: `<script>alert("x")</script>`})

	if strings.Contains(buf, "<script>") {
		t.Fatalf("raw markup from answers must not reach the buffer")
	}
	if !strings.Contains(buf, "&lt;script&gt;") {
		t.Fatalf("expected escaped answer in buffer")
	}
}

func TestRenderReAnswerOverwritesCleanly(t *testing.T) {
	first := Render(renderDate, map[int]string{0: "Old Name"})
	second := Render(renderDate, map[int]string{0: "New Name"})

	if strings.Contains(second, "Old Name") {
		t.Fatalf("regeneration must not carry earlier answers")
	}
	if strings.Count(first, "Old Name") != strings.Count(second, "New Name") {
		t.Fatalf("replacement positions should be identical across renders")
	}
}

func TestRenderAppendixIsIdempotent(t *testing.T) {
	answers := map[int]string{AppendixQuestionIndex: "zie bijlage"}

	buf := Render(renderDate, answers)
	if got := strings.Count(buf, appendixMarker); got != 1 {
		t.Fatalf("expected one appendix, got %d", got)
	}

	again := appendAppendix(buf)
	if got := strings.Count(again, appendixMarker); got != 1 {
		t.Fatalf("appendix must not duplicate, got %d", got)
	}

	// The appendix sits before the final closing div.
	if !strings.HasSuffix(strings.TrimSpace(buf), "</div>") {
		t.Fatalf("buffer should still end with the closing div")
	}
}

func TestUnresolvedTokens(t *testing.T) {
	buf := Render(renderDate, map[int]string{0: "Acme BV", 1: "Hoofdstraat 1"})

	tokens := UnresolvedTokens(buf)
	if len(tokens) == 0 {
		t.Fatalf("expected unresolved tokens in a partial render")
	}
	for _, token := range tokens {
		if token == "[BEDRIJFSNAAM]" || token == "[BEDRIJFSADRES]" {
			t.Fatalf("answered token %s reported unresolved", token)
		}
	}

	full := map[int]string{}
	for i := range answerTokens {
		full[i] = "ingevuld"
	}
	remaining := UnresolvedTokens(Render(renderDate, full))
	for _, token := range remaining {
		if _, mapped := tokenIndex(token); mapped {
			t.Fatalf("mapped token %s should be resolved", token)
		}
	}
}

func tokenIndex(token string) (int, bool) {
	for index, tokens := range answerTokens {
		for _, candidate := range tokens {
			if candidate == token {
				return index, true
			}
		}
	}
	return 0, false
}
