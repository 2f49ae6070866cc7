package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"isogen/internal/core/domain"
	"isogen/internal/infrastructure/export/htmldoc"
)

const sheetName = "Documenten"

// Exporter renders a user's document list as an xlsx workbook for the
// dashboard download.
type Exporter struct{}

func New() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Overview(docs []domain.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"Titel", "Type", "Bedrijf", "Status", "Voortgang", "Laatst bijgewerkt", "Samenvatting"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, doc := range docs {
		row := i + 2
		values := []any{
			doc.Title,
			doc.Type,
			doc.Company,
			string(doc.Status),
			fmt.Sprintf("%d%%", doc.Progress),
			doc.UpdatedAt.Format("2006-01-02 15:04"),
			excerpt(doc.EditableContent, 120),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func excerpt(content string, limit int) string {
	text := htmldoc.VisibleText(content)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
