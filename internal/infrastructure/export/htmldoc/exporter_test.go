package htmldoc

import (
	"strings"
	"testing"
)

func TestPrintKeepsContentReadable(t *testing.T) {
	e := New()

	payload := string(e.Print("ISO 9001 Kwaliteitshandboek", "<h1>Inleiding</h1><p>Welkom bij Acme BV.</p>"))
	if !strings.Contains(payload, "<title>ISO 9001 Kwaliteitshandboek</title>") {
		t.Fatalf("missing title in payload")
	}
	if !strings.Contains(payload, "@media print") {
		t.Fatalf("missing print css")
	}

	text := VisibleText(payload)
	if !strings.Contains(text, "Inleiding") || !strings.Contains(text, "Welkom bij Acme BV.") {
		t.Fatalf("content lost in wrapping: %q", text)
	}
	if strings.Contains(text, "Poppins") {
		t.Fatalf("style text must not leak into visible text")
	}
}

func TestWordCarriesOfficeNamespaces(t *testing.T) {
	e := New()

	payload := string(e.Word("ISO 9001 Kwaliteitshandboek", "<p>Hoofdstuk</p>"))
	if !strings.Contains(payload, "urn:schemas-microsoft-com:office:word") {
		t.Fatalf("missing word namespace")
	}
	if !strings.Contains(payload, "<meta charset='utf-8'>") {
		t.Fatalf("missing charset meta")
	}
	if !strings.Contains(VisibleText(payload), "Hoofdstuk") {
		t.Fatalf("content lost in wrapping")
	}
}

func TestVisibleTextCollapsesWhitespace(t *testing.T) {
	got := VisibleText("<div>  een\n\n<span>twee</span>\tdrie </div>")
	if got != "een twee drie" {
		t.Fatalf("unexpected text %q", got)
	}
}
