package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"isogen/internal/core/domain"
)

func TestOverviewWritesOneRowPerDocument(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	docs := []domain.Document{
		{
			Title:           "Kwaliteitshandboek",
			Type:            "ISO 9001",
			Company:         "Acme BV",
			Status:          domain.StatusConcept,
			Progress:        25,
			UpdatedAt:       now,
			EditableContent: "<h1>Inleiding</h1><p>Welkom.</p>",
		},
		{
			Title:     "Informatiebeveiliging",
			Type:      "ISO 27001",
			Company:   "Acme BV",
			Status:    domain.StatusComplete,
			Progress:  100,
			UpdatedAt: now,
		},
	}

	data, err := New().Overview(docs)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Titel" {
		t.Fatalf("unexpected header %q", rows[0][0])
	}
	if rows[1][0] != "Kwaliteitshandboek" || rows[1][1] != "ISO 9001" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[2][3] != string(domain.StatusComplete) || rows[2][4] != "100%" {
		t.Fatalf("unexpected second row %v", rows[2])
	}
	if rows[1][6] != "Inleiding Welkom." {
		t.Fatalf("unexpected excerpt %q", rows[1][6])
	}
}

func TestOverviewHandlesEmptyList(t *testing.T) {
	data, err := New().Overview(nil)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
