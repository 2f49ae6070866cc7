package docgen

import (
	"strings"
	"testing"
	"time"
)

func TestQuestionnaireTemplateIsDeterministic(t *testing.T) {
	created := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	first := QuestionnaireTemplate(created)
	second := QuestionnaireTemplate(created)
	if first != second {
		t.Fatalf("expected identical output for identical inputs")
	}
	if !strings.Contains(first, "14 maart 2026") {
		t.Fatalf("expected Dutch creation date in template")
	}
	if !strings.Contains(first, "[BEDRIJFSNAAM]") {
		t.Fatalf("expected literal placeholder tokens in pristine template")
	}
	if strings.Contains(first, dateToken) {
		t.Fatalf("date token should always be resolved at render time")
	}
}

func TestDefaultEditorContentHasUniqueChapterHeadings(t *testing.T) {
	content := DefaultEditorContent("ISO 9001", time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))

	for _, chapter := range Chapters() {
		heading := ">" + chapter.Heading() + "</h1>"
		if got := strings.Count(content, heading); got != 1 {
			t.Fatalf("expected exactly one heading %q, got %d", chapter.Heading(), got)
		}
	}
}

func TestDefaultEditorContentSeedsFirstSuggestions(t *testing.T) {
	content := DefaultEditorContent("ISO 9001", time.Now())

	for _, chapter := range Chapters() {
		if !strings.Contains(content, chapter.Sections[0].Suggestions[0]) {
			t.Fatalf("chapter %s first suggestion missing from default content", chapter.ID)
		}
	}
}

func TestFormatDutchDate(t *testing.T) {
	got := FormatDutchDate(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))
	if got != "1 december 2025" {
		t.Fatalf("expected 1 december 2025, got %q", got)
	}
}

func TestProfileForFallsBackToQuality(t *testing.T) {
	p := ProfileFor("unknown")
	if p.Name != "ISO 9001" || p.Color != "blue" {
		t.Fatalf("expected 9001 fallback profile, got %+v", p)
	}
	if ProfileFor("27001").Subtitle != "Informatiebeveiliging" {
		t.Fatalf("expected 27001 subtitle")
	}
}
